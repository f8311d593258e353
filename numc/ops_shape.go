package numc

import (
	"github.com/csotherden/numc/internal/shape"
)

// Reshape rewrites a's shape and strides in place to newExtents, preserving
// the underlying buffer. a must already be contiguous and newExtents must
// have the same total size.
func (a *Array) Reshape(newExtents []int) error {
	if a == nil {
		return newError(ErrNull, "reshape", "array is nil")
	}
	if !a.contiguous {
		return newError(ErrShape, "reshape", "array is not contiguous")
	}
	strides, err := shape.Reshape(a.shape, newExtents, a.elemSize)
	if err != nil {
		return newError(ErrShape, "reshape", "%v", err)
	}
	a.shape = append([]int(nil), newExtents...)
	a.strides = strides
	recomputeContiguous(a)
	return nil
}

// ReshapeCopy materialises a fresh contiguous Array with newExtents,
// gathering a's elements in C-order first. Unlike in-place Reshape, it
// works regardless of a's contiguity.
func ReshapeCopy(ctx *Context, a *Array, newExtents []int) (*Array, error) {
	if a == nil {
		return nil, newError(ErrNull, "reshape_copy", "array is nil")
	}
	if shape.Size(a.shape) != shape.Size(newExtents) {
		return nil, newError(ErrShape, "reshape_copy", "size mismatch: %v -> %v", a.shape, newExtents)
	}
	dst, err := Copy(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := dst.Reshape(newExtents); err != nil {
		return nil, err
	}
	return dst, nil
}

// Transpose applies permutation perm to a's shape and strides in place.
func (a *Array) Transpose(perm []int) error {
	if a == nil {
		return newError(ErrNull, "transpose", "array is nil")
	}
	newShape, newStrides, err := shape.Transpose(a.shape, a.strides, perm)
	if err != nil {
		return newError(ErrShape, "transpose", "%v", err)
	}
	a.shape = newShape
	a.strides = newStrides
	recomputeContiguous(a)
	return nil
}

// TransposeCopy returns a fresh contiguous Array holding the C-order
// permutation of a's elements, leaving a untouched.
func TransposeCopy(ctx *Context, a *Array, perm []int) (*Array, error) {
	if a == nil {
		return nil, newError(ErrNull, "transpose_copy", "array is nil")
	}
	view := *a
	view.shape = append([]int(nil), a.shape...)
	view.strides = append([]int(nil), a.strides...)
	if err := (&view).Transpose(perm); err != nil {
		return nil, err
	}
	return Copy(ctx, &view)
}

// Slice constructs a view of src along axis. The returned Array shares
// src's buffer and keeps src reachable via ancestor.
func Slice(src *Array, axis, start, stop, step int) (*Array, error) {
	if src == nil {
		return nil, newError(ErrNull, "slice", "array is nil")
	}
	newExtent, newStride, byteOffset, err := shape.Slice(src.shape, src.strides, axis, start, stop, step)
	if err != nil {
		return nil, newError(ErrShape, "slice", "%v", err)
	}
	out := &Array{
		kind:     src.kind,
		shape:    append([]int(nil), src.shape...),
		strides:  append([]int(nil), src.strides...),
		elemSize: src.elemSize,
		offset:   src.offset + byteOffset,
		data:     src.data,
		own:      view,
		ancestor: src,
		ctx:      src.ctx,
	}
	out.shape[axis] = newExtent
	out.strides[axis] = newStride
	out.size = shape.Size(out.shape)
	recomputeContiguous(out)
	return out, nil
}

// Contiguous returns a C-order layout for a: a itself if already
// contiguous, otherwise a fresh materialised copy.
func Contiguous(ctx *Context, a *Array) (*Array, error) {
	if a == nil {
		return nil, newError(ErrNull, "contiguous", "array is nil")
	}
	if a.contiguous {
		return a, nil
	}
	return Copy(ctx, a)
}
