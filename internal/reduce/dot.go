package reduce

import "github.com/csotherden/numc/internal/kernel"

// DotFn computes the 1-D dot product of a and b (n elements each, given
// strides): the sum of elementwise products. Float variants route the
// products through pairwise summation, matching ordinary sum's accuracy.
type DotFn func(a, b interface{}, n, sa, sb int) interface{}

func dotInt[T kernel.Integer](a, b []T, n, sa, sb int) T {
	var acc T
	ai, bi := 0, 0
	for i := 0; i < n; i++ {
		acc += a[ai] * b[bi]
		ai += sa
		bi += sb
	}
	return acc
}

func dotFloat[T kernel.Float](a, b []T, n, sa, sb int) T {
	if sa == 1 && sb == 1 {
		prod := make([]T, n)
		for i := 0; i < n; i++ {
			prod[i] = a[i] * b[i]
		}
		return PairwiseSum(prod)
	}
	var acc T
	ai, bi := 0, 0
	for i := 0; i < n; i++ {
		acc += a[ai] * b[bi]
		ai += sa
		bi += sb
	}
	return acc
}

func wrapDot[T kernel.Numeric](f func(a, b []T, n, sa, sb int) T) DotFn {
	return func(a, b interface{}, n, sa, sb int) interface{} {
		return f(a.([]T), b.([]T), n, sa, sb)
	}
}

var DotTable [numKinds]DotFn

func init() {
	DotTable[KInt8] = wrapDot(dotInt[int8])
	DotTable[KInt16] = wrapDot(dotInt[int16])
	DotTable[KInt32] = wrapDot(dotInt[int32])
	DotTable[KInt64] = wrapDot(dotInt[int64])
	DotTable[KUint8] = wrapDot(dotInt[uint8])
	DotTable[KUint16] = wrapDot(dotInt[uint16])
	DotTable[KUint32] = wrapDot(dotInt[uint32])
	DotTable[KUint64] = wrapDot(dotInt[uint64])
	DotTable[KFloat32] = wrapDot(dotFloat[float32])
	DotTable[KFloat64] = wrapDot(dotFloat[float64])
}
