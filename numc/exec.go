package numc

import (
	"github.com/csotherden/numc/internal/iter"
	"github.com/csotherden/numc/internal/kernel"
	"github.com/csotherden/numc/internal/reduce"
	"github.com/csotherden/numc/internal/shape"
)

// poolFor returns the worker pool belonging to out's arena context, or nil
// if out carries none (out.ctx == nil, e.g. an Array built outside any
// Context). kernel.Pool.Split treats a nil receiver as "run inline", so
// callers never need to branch on this themselves.
func poolFor(out *Array) *kernel.Pool {
	if out.ctx == nil {
		return nil
	}
	return out.ctx.pool
}

// broadcastElemStrides rewrites x's element strides against target, the
// output/result shape: axes where x has extent 1 but target does not get
// stride 0, and a missing leading axis contributes extent 1 / stride 0.
func broadcastElemStrides(target []int, x *Array) []int {
	return shape.BroadcastStrides(target, x.shape, x.elemStrides())
}

// binaryExec drives a 2-input, 1-output element-wise kernel over a, b, out
// (already validated by checkBinary). When the three shapes coincide
// exactly and every operand is contiguous, it issues one flat call over
// the whole buffer; otherwise it rewrites broadcast strides and drives the
// kernel with the ND iterator, one call per position of every axis but the
// last (the inner axis is still passed to the kernel as a run of n
// elements, so contiguous-favoring kernels like vecf32.Add still get to
// vectorise the innermost dimension).
func binaryExec(fn kernel.BinaryFn, a, b, out *Array) {
	if shapeEqual(a.shape, out.shape) && shapeEqual(b.shape, out.shape) &&
		a.contiguous && b.contiguous && out.contiguous {
		poolFor(out).Split(out.size, out.elemSize, func(lo, hi int) {
			fn(a.dataAt(lo), b.dataAt(lo), out.dataAt(lo), hi-lo, 1, 1, 1)
		})
		return
	}
	as := broadcastElemStrides(out.shape, a)
	bs := broadcastElemStrides(out.shape, b)
	os := out.elemStrides()
	rank := len(out.shape)
	last := rank - 1
	inner := out.shape[last]
	if rank == 1 {
		fn(a.dataAt(0), b.dataAt(0), out.dataAt(0), inner, as[0], bs[0], os[0])
		return
	}
	it := iter.New(out.shape, last, as, bs, os)
	for off := it.Start(); !it.Done(); off = it.Next() {
		fn(a.dataAt(off[0]), b.dataAt(off[1]), out.dataAt(off[2]), inner, as[last], bs[last], os[last])
	}
}

// unaryExec mirrors binaryExec for a single-input kernel. Unary ops never
// broadcast; a and out always share shape, so the only branch is
// contiguous-flat vs strided.
func unaryExec(fn kernel.UnaryFn, a, out *Array) {
	if a.contiguous && out.contiguous {
		poolFor(out).Split(out.size, out.elemSize, func(lo, hi int) {
			fn(a.dataAt(lo), out.dataAt(lo), hi-lo, 1, 1)
		})
		return
	}
	as := a.elemStrides()
	os := out.elemStrides()
	rank := len(out.shape)
	last := rank - 1
	inner := out.shape[last]
	if rank == 1 {
		fn(a.dataAt(0), out.dataAt(0), inner, as[0], os[0])
		return
	}
	it := iter.New(out.shape, last, as, os)
	for off := it.Start(); !it.Done(); off = it.Next() {
		fn(a.dataAt(off[0]), out.dataAt(off[1]), inner, as[last], os[last])
	}
}

// scalarExec mirrors unaryExec for the scalar-broadcast op family
// (add_scalar, sub_scalar, ...): a double operand is cast to the element
// kind once inside the kernel.
func scalarExec(fn kernel.ScalarFn, a, out *Array, scalar float64) {
	if a.contiguous && out.contiguous {
		poolFor(out).Split(out.size, out.elemSize, func(lo, hi int) {
			fn(a.dataAt(lo), out.dataAt(lo), hi-lo, 1, 1, scalar)
		})
		return
	}
	as := a.elemStrides()
	os := out.elemStrides()
	rank := len(out.shape)
	last := rank - 1
	inner := out.shape[last]
	if rank == 1 {
		fn(a.dataAt(0), out.dataAt(0), inner, as[0], os[0], scalar)
		return
	}
	it := iter.New(out.shape, last, as, os)
	for off := it.Start(); !it.Done(); off = it.Next() {
		fn(a.dataAt(off[0]), out.dataAt(off[1]), inner, as[last], os[last], scalar)
	}
}

// clipExec mirrors scalarExec for the two-bound clip kernel.
func clipExec(fn kernel.ClipFn, a, out *Array, lo, hi float64) {
	if a.contiguous && out.contiguous {
		poolFor(out).Split(out.size, out.elemSize, func(plo, phi int) {
			fn(a.dataAt(plo), out.dataAt(plo), phi-plo, 1, 1, lo, hi)
		})
		return
	}
	as := a.elemStrides()
	os := out.elemStrides()
	rank := len(out.shape)
	last := rank - 1
	inner := out.shape[last]
	if rank == 1 {
		fn(a.dataAt(0), out.dataAt(0), inner, as[0], os[0], lo, hi)
		return
	}
	it := iter.New(out.shape, last, as, os)
	for off := it.Start(); !it.Done(); off = it.Next() {
		fn(a.dataAt(off[0]), out.dataAt(off[1]), inner, as[last], os[last], lo, hi)
	}
}

// flattenContiguous returns a's data and size unchanged if a is already
// contiguous; otherwise it gathers a's elements into a fresh contiguous
// buffer in C-order first. A full reduction must consume an array
// regardless of its layout; rather than special-casing every reduce
// kernel for an arbitrary-rank strided walk, this reduces the
// non-contiguous case to the already-solved contiguous one, exactly the
// approach numc.Copy uses for the same problem (see numc/backing.go
// gatherInto).
func flattenContiguous(a *Array) (interface{}, int) {
	if a.contiguous {
		return a.Data(), a.size
	}
	buf := makeBacking(a.kind, a.size)
	gatherInto(buf, a)
	return buf, a.size
}

// reduceAxisGeneric is the generic axis-reduction path: the ND iterator
// walks the size/shape[axis] output positions (every axis but axis), and
// for each one table[kind] scans the reduction axis using a's
// iterator-provided base offset and element stride along axis.
func reduceAxisGeneric(kindIdx int, table [kernel.NumKinds]reduce.FullFn, a *Array, axis int, outData interface{}, outKind Kind) {
	n := a.shape[axis]
	s := a.elemStrides()[axis]
	it := iter.New(a.shape, axis, a.elemStrides())
	i := 0
	for off := it.Start(); !it.Done(); off = it.Next() {
		v := table[kindIdx](a.dataAt(off[0]), n, s)
		setElem(outKind, outData, i, v)
		i++
	}
}

// reduceAxisGenericArg is reduceAxisGeneric's int64-output counterpart for
// argmin/argmax.
func reduceAxisGenericArg(kindIdx int, table [kernel.NumKinds]reduce.ArgFn, a *Array, axis int, outData []int64) {
	n := a.shape[axis]
	s := a.elemStrides()[axis]
	it := iter.New(a.shape, axis, a.elemStrides())
	i := 0
	for off := it.Start(); !it.Done(); off = it.Next() {
		outData[i] = table[kindIdx](a.dataAt(off[0]), n, s)
		i++
	}
}
