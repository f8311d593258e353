package numc

import (
	"github.com/csotherden/numc/internal/reduce"
	"github.com/csotherden/numc/internal/shape"
)

// FullAxis is passed as the axis argument to request a full reduction over
// every element instead of a single axis, following the NumPy convention
// of an axis value meaning "no axis" rather than a second entry point per
// reduction.
const FullAxis = -1

// fastAxisPath reports whether the fused row-reduce fast path applies:
// out must be contiguous, and the non-reduced axes of a must form a
// contiguous block.
func fastAxisPath(a, out *Array, axis int) bool {
	return out.contiguous && shape.NonReducedContiguous(a.shape, a.strides, a.elemSize, axis)
}

// Sum reduces a along axis (or every element when axis == FullAxis) by
// addition. Float sums use pairwise summation on the contiguous fast path.
// keepdim controls whether out's reduced axis survives as an extent-1
// dimension; it is checked against out's actual shape.
func Sum(a, out *Array, axis int, keepdim bool) error {
	if axis == FullAxis {
		if err := checkReduceFull("sum", a, out, a.kind); err != nil {
			return err
		}
		data, n := flattenContiguous(a)
		setElem(a.kind, out.Data(), 0, reduce.SumTable[a.kind](data, n, 1))
		return nil
	}
	if err := checkReduceAxis("sum", a, out, axis, keepdim, a.kind); err != nil {
		return err
	}
	kidx := int(a.kind)
	if fastAxisPath(a, out, axis) {
		zeroN(a.kind, out.Data(), out.size)
		reduce.FusedSumTable[kidx](a.Data(), a.elemStrides()[axis], a.shape[axis], out.Data(), out.size)
		return nil
	}
	reduceAxisGeneric(kidx, reduce.SumTable, a, axis, out.Data(), a.kind)
	return nil
}

// Mean reduces a along axis (or every element) to the arithmetic mean.
// Integer kinds truncate sum/count; floats use native IEEE division. An
// empty full reduction leaves out untouched rather than dividing by zero;
// an axis reduction along a zero-extent axis writes the zero sum into out
// and skips the division.
func Mean(a, out *Array, axis int, keepdim bool) error {
	if axis == FullAxis {
		if err := checkReduceFull("mean", a, out, a.kind); err != nil {
			return err
		}
		data, n := flattenContiguous(a)
		if n == 0 {
			// Leave out untouched rather than divide by zero.
			return nil
		}
		sum := reduce.SumTable[a.kind](data, n, 1)
		setElem(a.kind, out.Data(), 0, reduce.Mean(int(a.kind), sum, n))
		return nil
	}
	if err := checkReduceAxis("mean", a, out, axis, keepdim, a.kind); err != nil {
		return err
	}
	kidx := int(a.kind)
	count := a.shape[axis]
	if fastAxisPath(a, out, axis) {
		zeroN(a.kind, out.Data(), out.size)
		reduce.FusedSumTable[kidx](a.Data(), a.elemStrides()[axis], count, out.Data(), out.size)
	} else {
		reduceAxisGeneric(kidx, reduce.SumTable, a, axis, out.Data(), a.kind)
	}
	if count > 0 {
		reduce.DivideByCountTable[kidx](out.Data(), out.size, count)
	}
	return nil
}

// reduceExtreme shares Max/Min's structure: a full-array identity-seeded
// scan, or an axis reduction that prefers the fused row-reduce fast path
// (which itself seeds the output from the first row, then reduces the
// remaining rows on top) over the generic per-position scan.
func reduceExtreme(op string, full [10]reduce.FullFn, fused [10]reduce.FusedFn, a, out *Array, axis int, keepdim bool) error {
	if axis == FullAxis {
		if err := checkReduceFull(op, a, out, a.kind); err != nil {
			return err
		}
		data, n := flattenContiguous(a)
		setElem(a.kind, out.Data(), 0, full[a.kind](data, n, 1))
		return nil
	}
	if err := checkReduceAxis(op, a, out, axis, keepdim, a.kind); err != nil {
		return err
	}
	kidx := int(a.kind)
	if fastAxisPath(a, out, axis) {
		fused[kidx](a.Data(), a.elemStrides()[axis], a.shape[axis], out.Data(), out.size)
		return nil
	}
	reduceAxisGeneric(kidx, full, a, axis, out.Data(), a.kind)
	return nil
}

// Max reduces a along axis (or every element) by maximum.
func Max(a, out *Array, axis int, keepdim bool) error {
	return reduceExtreme("max", reduce.MaxTable, reduce.FusedMaxTable, a, out, axis, keepdim)
}

// Min reduces a along axis (or every element) by minimum.
func Min(a, out *Array, axis int, keepdim bool) error {
	return reduceExtreme("min", reduce.MinTable, reduce.FusedMinTable, a, out, axis, keepdim)
}

// Prod reduces a along axis (or every element) by multiplication. There is
// no fused fast path for prod; the axis form always uses the generic
// per-position path.
func Prod(a, out *Array, axis int, keepdim bool) error {
	if axis == FullAxis {
		if err := checkReduceFull("prod", a, out, a.kind); err != nil {
			return err
		}
		data, n := flattenContiguous(a)
		setElem(a.kind, out.Data(), 0, reduce.ProdTable[a.kind](data, n, 1))
		return nil
	}
	if err := checkReduceAxis("prod", a, out, axis, keepdim, a.kind); err != nil {
		return err
	}
	reduceAxisGeneric(int(a.kind), reduce.ProdTable, a, axis, out.Data(), a.kind)
	return nil
}

func reduceArg(op string, table [10]reduce.ArgFn, fused [10]reduce.FusedArgFn, a, out *Array, axis int, keepdim bool) error {
	if axis == FullAxis {
		if err := checkReduceFull(op, a, out, Int64); err != nil {
			return err
		}
		if a.size == 0 {
			return newError(ErrShape, op, "cannot reduce an empty array")
		}
		data, n := flattenContiguous(a)
		out.Data().([]int64)[0] = table[a.kind](data, n, 1)
		return nil
	}
	if err := checkReduceAxis(op, a, out, axis, keepdim, Int64); err != nil {
		return err
	}
	kidx := int(a.kind)
	outIdx := out.Data().([]int64)
	if fastAxisPath(a, out, axis) {
		bestVal := makeBacking(a.kind, out.size)
		fused[kidx](a.Data(), a.elemStrides()[axis], a.shape[axis], bestVal, outIdx, out.size)
		return nil
	}
	reduceAxisGenericArg(kidx, table, a, axis, outIdx)
	return nil
}

// ArgMax reduces a along axis (or every element) to the index of the
// maximum element, breaking ties by earliest occurrence. out's kind must
// be Int64.
func ArgMax(a, out *Array, axis int, keepdim bool) error {
	return reduceArg("argmax", reduce.ArgMaxTable, reduce.FusedArgMaxTable, a, out, axis, keepdim)
}

// ArgMin reduces a along axis (or every element) to the index of the
// minimum element, breaking ties by earliest occurrence. out's kind must
// be Int64.
func ArgMin(a, out *Array, axis int, keepdim bool) error {
	return reduceArg("argmin", reduce.ArgMinTable, reduce.FusedArgMinTable, a, out, axis, keepdim)
}
