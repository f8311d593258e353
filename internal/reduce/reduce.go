// Package reduce implements the full and per-axis reduction kernels: sum,
// mean, min, max, prod, argmin, argmax, and dot, with pairwise-summation
// floats and the fused row-reduce axis fast path.
package reduce

import (
	"math"

	"github.com/csotherden/numc/internal/kernel"
)

// Kind index aliases, matching numc.Kind's iota ordering (see
// internal/kernel/binary.go for why these live outside the numc package).
const (
	KInt8 = iota
	KInt16
	KInt32
	KInt64
	KUint8
	KUint16
	KUint32
	KUint64
	KFloat32
	KFloat64

	numKinds = KFloat64 + 1
)

// FullFn reduces n elements of a (element stride s) to a single scalar of
// the same element kind. Dispatch tables are indexed by Kind.
type FullFn func(a interface{}, n, s int) interface{}

// ArgFn reduces n elements of a to the int64 index of the extreme value,
// breaking ties by earliest occurrence.
type ArgFn func(a interface{}, n, s int) int64

func sumInt[T kernel.Integer](a []T, n, s int) T {
	var acc T
	idx := 0
	for i := 0; i < n; i++ {
		acc += a[idx]
		idx += s
	}
	return acc
}

// sumFloat uses pairwise summation on the contiguous fast path (element
// stride 1) and a serial accumulator otherwise; pairwise summation needs a
// contiguous slice to recurse over, so a strided walk falls back to the
// simple loop.
func sumFloat[T kernel.Float](a []T, n, s int) T {
	if s == 1 {
		return PairwiseSum(a[:n])
	}
	var acc T
	idx := 0
	for i := 0; i < n; i++ {
		acc += a[idx]
		idx += s
	}
	return acc
}

func prodReduce[T kernel.Numeric](a []T, n, s int) T {
	acc := T(1)
	idx := 0
	for i := 0; i < n; i++ {
		acc *= a[idx]
		idx += s
	}
	return acc
}

func extremeReduce[T kernel.Numeric](a []T, n, s int, identity T, better func(v, best T) bool) T {
	acc := identity
	idx := 0
	for i := 0; i < n; i++ {
		if v := a[idx]; better(v, acc) {
			acc = v
		}
		idx += s
	}
	return acc
}

func meanFromSum[T kernel.Numeric](sum T, n int) T {
	if n == 0 {
		return sum
	}
	return sum / T(n)
}

func argReduce[T kernel.Numeric](a []T, n, s int, better func(v, best T) bool) int64 {
	bestIdx := 0
	bestVal := a[0]
	idx := s
	for i := 1; i < n; i++ {
		if v := a[idx]; better(v, bestVal) {
			bestVal = v
			bestIdx = i
		}
		idx += s
	}
	return int64(bestIdx)
}

func wrapFull[T kernel.Numeric](f func(a []T, n, s int) T) FullFn {
	return func(a interface{}, n, s int) interface{} { return f(a.([]T), n, s) }
}

func wrapArg[T kernel.Numeric](f func(a []T, n, s int) int64) ArgFn {
	return func(a interface{}, n, s int) int64 { return f(a.([]T), n, s) }
}

var (
	SumTable    [numKinds]FullFn
	ProdTable   [numKinds]FullFn
	MinTable    [numKinds]FullFn
	MaxTable    [numKinds]FullFn
	ArgMinTable [numKinds]ArgFn
	ArgMaxTable [numKinds]ArgFn
)

func lessT[T kernel.Numeric](v, best T) bool    { return v < best }
func greaterT[T kernel.Numeric](v, best T) bool { return v > best }

func init() {
	SumTable[KInt8] = wrapFull(sumInt[int8])
	SumTable[KInt16] = wrapFull(sumInt[int16])
	SumTable[KInt32] = wrapFull(sumInt[int32])
	SumTable[KInt64] = wrapFull(sumInt[int64])
	SumTable[KUint8] = wrapFull(sumInt[uint8])
	SumTable[KUint16] = wrapFull(sumInt[uint16])
	SumTable[KUint32] = wrapFull(sumInt[uint32])
	SumTable[KUint64] = wrapFull(sumInt[uint64])
	SumTable[KFloat32] = wrapFull(sumFloat[float32])
	SumTable[KFloat64] = wrapFull(sumFloat[float64])

	ProdTable[KInt8] = wrapFull(prodReduce[int8])
	ProdTable[KInt16] = wrapFull(prodReduce[int16])
	ProdTable[KInt32] = wrapFull(prodReduce[int32])
	ProdTable[KInt64] = wrapFull(prodReduce[int64])
	ProdTable[KUint8] = wrapFull(prodReduce[uint8])
	ProdTable[KUint16] = wrapFull(prodReduce[uint16])
	ProdTable[KUint32] = wrapFull(prodReduce[uint32])
	ProdTable[KUint64] = wrapFull(prodReduce[uint64])
	ProdTable[KFloat32] = wrapFull(prodReduce[float32])
	ProdTable[KFloat64] = wrapFull(prodReduce[float64])

	// Max identity is the smallest representable value of the kind so any
	// real element beats it.
	MaxTable[KInt8] = wrapFull(func(a []int8, n, s int) int8 {
		return extremeReduce(a, n, s, int8(math.MinInt8), greaterT[int8])
	})
	MaxTable[KInt16] = wrapFull(func(a []int16, n, s int) int16 {
		return extremeReduce(a, n, s, int16(math.MinInt16), greaterT[int16])
	})
	MaxTable[KInt32] = wrapFull(func(a []int32, n, s int) int32 {
		return extremeReduce(a, n, s, int32(math.MinInt32), greaterT[int32])
	})
	MaxTable[KInt64] = wrapFull(func(a []int64, n, s int) int64 {
		return extremeReduce(a, n, s, int64(math.MinInt64), greaterT[int64])
	})
	MaxTable[KUint8] = wrapFull(func(a []uint8, n, s int) uint8 {
		return extremeReduce(a, n, s, uint8(0), greaterT[uint8])
	})
	MaxTable[KUint16] = wrapFull(func(a []uint16, n, s int) uint16 {
		return extremeReduce(a, n, s, uint16(0), greaterT[uint16])
	})
	MaxTable[KUint32] = wrapFull(func(a []uint32, n, s int) uint32 {
		return extremeReduce(a, n, s, uint32(0), greaterT[uint32])
	})
	MaxTable[KUint64] = wrapFull(func(a []uint64, n, s int) uint64 {
		return extremeReduce(a, n, s, uint64(0), greaterT[uint64])
	})
	MaxTable[KFloat32] = wrapFull(func(a []float32, n, s int) float32 {
		return extremeReduce(a, n, s, float32(math.Inf(-1)), greaterT[float32])
	})
	MaxTable[KFloat64] = wrapFull(func(a []float64, n, s int) float64 {
		return extremeReduce(a, n, s, math.Inf(-1), greaterT[float64])
	})

	// Min identity is the largest representable value of the kind.
	MinTable[KInt8] = wrapFull(func(a []int8, n, s int) int8 {
		return extremeReduce(a, n, s, int8(math.MaxInt8), lessT[int8])
	})
	MinTable[KInt16] = wrapFull(func(a []int16, n, s int) int16 {
		return extremeReduce(a, n, s, int16(math.MaxInt16), lessT[int16])
	})
	MinTable[KInt32] = wrapFull(func(a []int32, n, s int) int32 {
		return extremeReduce(a, n, s, int32(math.MaxInt32), lessT[int32])
	})
	MinTable[KInt64] = wrapFull(func(a []int64, n, s int) int64 {
		return extremeReduce(a, n, s, int64(math.MaxInt64), lessT[int64])
	})
	MinTable[KUint8] = wrapFull(func(a []uint8, n, s int) uint8 {
		return extremeReduce(a, n, s, uint8(math.MaxUint8), lessT[uint8])
	})
	MinTable[KUint16] = wrapFull(func(a []uint16, n, s int) uint16 {
		return extremeReduce(a, n, s, uint16(math.MaxUint16), lessT[uint16])
	})
	MinTable[KUint32] = wrapFull(func(a []uint32, n, s int) uint32 {
		return extremeReduce(a, n, s, uint32(math.MaxUint32), lessT[uint32])
	})
	MinTable[KUint64] = wrapFull(func(a []uint64, n, s int) uint64 {
		return extremeReduce(a, n, s, uint64(math.MaxUint64), lessT[uint64])
	})
	MinTable[KFloat32] = wrapFull(func(a []float32, n, s int) float32 {
		return extremeReduce(a, n, s, float32(math.Inf(1)), lessT[float32])
	})
	MinTable[KFloat64] = wrapFull(func(a []float64, n, s int) float64 {
		return extremeReduce(a, n, s, math.Inf(1), lessT[float64])
	})

	ArgMaxTable[KInt8] = wrapArg(func(a []int8, n, s int) int64 { return argReduce(a, n, s, greaterT[int8]) })
	ArgMaxTable[KInt16] = wrapArg(func(a []int16, n, s int) int64 { return argReduce(a, n, s, greaterT[int16]) })
	ArgMaxTable[KInt32] = wrapArg(func(a []int32, n, s int) int64 { return argReduce(a, n, s, greaterT[int32]) })
	ArgMaxTable[KInt64] = wrapArg(func(a []int64, n, s int) int64 { return argReduce(a, n, s, greaterT[int64]) })
	ArgMaxTable[KUint8] = wrapArg(func(a []uint8, n, s int) int64 { return argReduce(a, n, s, greaterT[uint8]) })
	ArgMaxTable[KUint16] = wrapArg(func(a []uint16, n, s int) int64 { return argReduce(a, n, s, greaterT[uint16]) })
	ArgMaxTable[KUint32] = wrapArg(func(a []uint32, n, s int) int64 { return argReduce(a, n, s, greaterT[uint32]) })
	ArgMaxTable[KUint64] = wrapArg(func(a []uint64, n, s int) int64 { return argReduce(a, n, s, greaterT[uint64]) })
	ArgMaxTable[KFloat32] = wrapArg(func(a []float32, n, s int) int64 { return argReduce(a, n, s, greaterT[float32]) })
	ArgMaxTable[KFloat64] = wrapArg(func(a []float64, n, s int) int64 { return argReduce(a, n, s, greaterT[float64]) })

	ArgMinTable[KInt8] = wrapArg(func(a []int8, n, s int) int64 { return argReduce(a, n, s, lessT[int8]) })
	ArgMinTable[KInt16] = wrapArg(func(a []int16, n, s int) int64 { return argReduce(a, n, s, lessT[int16]) })
	ArgMinTable[KInt32] = wrapArg(func(a []int32, n, s int) int64 { return argReduce(a, n, s, lessT[int32]) })
	ArgMinTable[KInt64] = wrapArg(func(a []int64, n, s int) int64 { return argReduce(a, n, s, lessT[int64]) })
	ArgMinTable[KUint8] = wrapArg(func(a []uint8, n, s int) int64 { return argReduce(a, n, s, lessT[uint8]) })
	ArgMinTable[KUint16] = wrapArg(func(a []uint16, n, s int) int64 { return argReduce(a, n, s, lessT[uint16]) })
	ArgMinTable[KUint32] = wrapArg(func(a []uint32, n, s int) int64 { return argReduce(a, n, s, lessT[uint32]) })
	ArgMinTable[KUint64] = wrapArg(func(a []uint64, n, s int) int64 { return argReduce(a, n, s, lessT[uint64]) })
	ArgMinTable[KFloat32] = wrapArg(func(a []float32, n, s int) int64 { return argReduce(a, n, s, lessT[float32]) })
	ArgMinTable[KFloat64] = wrapArg(func(a []float64, n, s int) int64 { return argReduce(a, n, s, lessT[float64]) })
}

// Mean computes sum/count from a previously-reduced sum value and its
// element kind, applying truncating division for integer kinds and native
// IEEE division for floats. It is a thin helper over meanFromSum so the
// numc layer doesn't need one type switch per kind at the call site; see
// numc/ops_reduce.go.
func Mean(kindIdx int, sum interface{}, n int) interface{} {
	switch kindIdx {
	case KInt8:
		return meanFromSum(sum.(int8), n)
	case KInt16:
		return meanFromSum(sum.(int16), n)
	case KInt32:
		return meanFromSum(sum.(int32), n)
	case KInt64:
		return meanFromSum(sum.(int64), n)
	case KUint8:
		return meanFromSum(sum.(uint8), n)
	case KUint16:
		return meanFromSum(sum.(uint16), n)
	case KUint32:
		return meanFromSum(sum.(uint32), n)
	case KUint64:
		return meanFromSum(sum.(uint64), n)
	case KFloat32:
		return meanFromSum(sum.(float32), n)
	case KFloat64:
		return meanFromSum(sum.(float64), n)
	}
	panic("reduce: Mean: invalid kind index")
}
