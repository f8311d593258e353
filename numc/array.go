package numc

import (
	"github.com/csotherden/numc/internal/shape"
)

// ownership classifies the lifetime relationship between an Array and its
// backing buffer.
type ownership int

const (
	owning ownership = iota
	view
	arenaOwned
)

// MaxRank bounds the number of dimensions an Array may carry. Go's
// slice-backed shape/stride representation has no practical limit, but a
// bound keeps pathological inputs from silently accepting unreasonable
// rank.
const MaxRank = 32

// Array is a logical tensor: a typed view over a shared backing buffer
// with its own shape, byte strides, and contiguity flag. Arrays produced
// by Slice share their ancestor's buffer and keep it reachable via
// ancestor, the GC'd-language encoding of a view; Transpose and Reshape
// rewrite an Array's own shape and strides in place.
type Array struct {
	kind       Kind
	shape      []int
	strides    []int // bytes
	elemSize   int
	size       int
	offset     int // bytes, into data
	data       interface{}
	contiguous bool
	own        ownership
	ancestor   *Array
	ctx        *Context
}

// Kind returns the element type.
func (a *Array) Kind() Kind { return a.kind }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the extents.
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)
	return out
}

// Strides returns a copy of the byte strides.
func (a *Array) Strides() []int {
	out := make([]int, len(a.strides))
	copy(out, a.strides)
	return out
}

// ElemSize returns the byte width of one element.
func (a *Array) ElemSize() int { return a.elemSize }

// Size returns the total element count.
func (a *Array) Size() int { return a.size }

// Capacity returns size * elem_size.
func (a *Array) Capacity() int { return a.size * a.elemSize }

// IsContiguous reports whether the array is laid out in canonical C-order
// with no gaps.
func (a *Array) IsContiguous() bool { return a.contiguous }

// Data returns the array's backing slice (a concrete []int8 ... []float64
// depending on Kind), offset to the array's first logical element. Its
// remaining capacity, combined with shape/strides, always covers every
// legal index tuple; kernels and internal packages index it with element
// strides, not byte strides.
func (a *Array) Data() interface{} { return elemSlice(a.kind, a.data, a.elemOffset()) }

func (a *Array) elemOffset() int { return a.offset / a.elemSize }

// dataAt returns a's backing slice sliced to start elemOff elements past
// a's first logical element, the form kernels need when an ND iterator
// hands back a per-axis element offset (see numc/exec.go).
func (a *Array) dataAt(elemOff int) interface{} { return elemSlice(a.kind, a.data, a.elemOffset()+elemOff) }

// elemStrides converts the array's byte strides to element strides, the
// form every kernel table in internal/kernel and internal/reduce expects.
func (a *Array) elemStrides() []int {
	out := make([]int, len(a.strides))
	for i, s := range a.strides {
		out[i] = s / a.elemSize
	}
	return out
}

func recomputeContiguous(a *Array) {
	a.contiguous = shape.IsContiguous(a.shape, a.strides, a.elemSize)
}

func newOwning(kind Kind, extents []int, data interface{}, ctx *Context) *Array {
	strides := shape.RowMajorStrides(extents, kind.Size())
	a := &Array{
		kind:       kind,
		shape:      append([]int(nil), extents...),
		strides:    strides,
		elemSize:   kind.Size(),
		size:       shape.Size(extents),
		data:       data,
		contiguous: true,
		own:        owning,
		ctx:        ctx,
	}
	if ctx != nil {
		a.own = arenaOwned
		ctx.track(a)
	}
	return a
}

func checkShapeCreate(op string, extents []int) error {
	if len(extents) == 0 || len(extents) > MaxRank {
		return newError(ErrShape, op, "rank %d out of range (1..%d)", len(extents), MaxRank)
	}
	for i, e := range extents {
		if e < 0 {
			return newError(ErrShape, op, "negative extent %d at axis %d", e, i)
		}
	}
	return nil
}

// Create allocates an uninitialised contiguous buffer. Go's make always
// zero-fills, so in this implementation Create and Zeros are identical;
// Create exists as a distinct entry point for API symmetry with Zeros and
// Fill.
func Create(ctx *Context, kind Kind, extents []int) (*Array, error) {
	if err := checkShapeCreate("create", extents); err != nil {
		return nil, err
	}
	return newOwning(kind, extents, makeBacking(kind, shape.Size(extents)), ctx), nil
}

// Zeros allocates and zero-fills a contiguous buffer.
func Zeros(ctx *Context, kind Kind, extents []int) (*Array, error) {
	if err := checkShapeCreate("zeros", extents); err != nil {
		return nil, err
	}
	return newOwning(kind, extents, makeBacking(kind, shape.Size(extents)), ctx), nil
}

// Fill allocates a contiguous buffer and broadcasts scalar into every
// element, cast to kind.
func Fill(ctx *Context, kind Kind, extents []int, scalar float64) (*Array, error) {
	if err := checkShapeCreate("fill", extents); err != nil {
		return nil, err
	}
	n := shape.Size(extents)
	data := makeBacking(kind, n)
	fillBacking(kind, data, scalar)
	return newOwning(kind, extents, data, ctx), nil
}

// Copy deep-copies src into a fresh contiguous, owning buffer, gathering
// elements in C-order via the ND iterator regardless of src's layout.
func Copy(ctx *Context, src *Array) (*Array, error) {
	if src == nil {
		return nil, newError(ErrNull, "copy", "src is nil")
	}
	dst := newOwning(src.kind, src.shape, makeBacking(src.kind, src.size), ctx)
	gatherInto(dst.Data(), src)
	return dst, nil
}

// Clone is Copy as a method, for ergonomic call sites.
func (a *Array) Clone() (*Array, error) { return Copy(a.ctx, a) }

// Write bulk-copies raw, a slice of the same Kind's concrete element type
// holding exactly dst.Size() elements in C-order, into dst's buffer. dst
// must be contiguous; a non-contiguous destination fails with ERR_SHAPE.
func Write(dst *Array, raw interface{}) error {
	if dst == nil {
		return newError(ErrNull, "write", "dst is nil")
	}
	if !dst.contiguous {
		return newError(ErrShape, "write", "destination is not contiguous")
	}
	n, err := backingLen(dst.kind, raw)
	if err != nil {
		return newError(ErrType, "write", "%v", err)
	}
	if n != dst.size {
		return newError(ErrShape, "write", "source has %d elements, destination has %d", n, dst.size)
	}
	copyBacking(dst.kind, dst.Data(), raw, dst.size)
	return nil
}
