package reduce

import "github.com/csotherden/numc/internal/kernel"

// FusedFn is the fused row-reduce fast path: it streams nRows contiguous
// rows of nCols elements each -- row r starting at base[r*rowStride] --
// into dst, replacing N cache-hostile strided per-element reductions with
// reduce_len contiguous memory passes. Used for sum/max/min axis
// reductions when the output is contiguous and the input's non-reduced
// axes form a contiguous block.
type FusedFn func(base interface{}, rowStride, nRows int, dst interface{}, nCols int)

// FusedArgFn is the arg-reduction counterpart: it tracks the best value per
// column in bestVal (scratch, length nCols) and writes the winning row
// index into bestIdx (length nCols), breaking ties by first occurrence.
type FusedArgFn func(base interface{}, rowStride, nRows int, bestVal interface{}, bestIdx []int64, nCols int)

// DivideFn divides every one of the first n elements of data by count, the
// mean axis post-pass applied after the sum axis-reduce fast path.
type DivideFn func(data interface{}, n, count int)

func fusedSum[T kernel.Numeric](base []T, rowStride, nRows int, dst []T, nCols int) {
	for r := 0; r < nRows; r++ {
		off := r * rowStride
		for i := 0; i < nCols; i++ {
			dst[i] += base[off+i]
		}
	}
}

func fusedExtreme[T kernel.Numeric](base []T, rowStride, nRows int, dst []T, nCols int, better func(v, best T) bool) {
	copy(dst[:nCols], base[:nCols])
	for r := 1; r < nRows; r++ {
		off := r * rowStride
		for i := 0; i < nCols; i++ {
			if v := base[off+i]; better(v, dst[i]) {
				dst[i] = v
			}
		}
	}
}

func fusedArg[T kernel.Numeric](base []T, rowStride, nRows int, bestVal []T, bestIdx []int64, nCols int, better func(v, best T) bool) {
	copy(bestVal[:nCols], base[:nCols])
	for i := 0; i < nCols; i++ {
		bestIdx[i] = 0
	}
	for r := 1; r < nRows; r++ {
		off := r * rowStride
		for i := 0; i < nCols; i++ {
			if v := base[off+i]; better(v, bestVal[i]) {
				bestVal[i] = v
				bestIdx[i] = int64(r)
			}
		}
	}
}

func divideByCount[T kernel.Numeric](data []T, n, count int) {
	c := T(count)
	for i := 0; i < n; i++ {
		data[i] = data[i] / c
	}
}

func wrapFused[T kernel.Numeric](f func(base []T, rowStride, nRows int, dst []T, nCols int)) FusedFn {
	return func(base interface{}, rowStride, nRows int, dst interface{}, nCols int) {
		f(base.([]T), rowStride, nRows, dst.([]T), nCols)
	}
}

func wrapFusedArg[T kernel.Numeric](f func(base []T, rowStride, nRows int, bestVal []T, bestIdx []int64, nCols int)) FusedArgFn {
	return func(base interface{}, rowStride, nRows int, bestVal interface{}, bestIdx []int64, nCols int) {
		f(base.([]T), rowStride, nRows, bestVal.([]T), bestIdx, nCols)
	}
}

func wrapDivide[T kernel.Numeric](f func(data []T, n, count int)) DivideFn {
	return func(data interface{}, n, count int) { f(data.([]T), n, count) }
}

var (
	FusedSumTable    [numKinds]FusedFn
	FusedMaxTable    [numKinds]FusedFn
	FusedMinTable    [numKinds]FusedFn
	FusedArgMaxTable [numKinds]FusedArgFn
	FusedArgMinTable [numKinds]FusedArgFn
	DivideByCountTable [numKinds]DivideFn
)

func registerFusedExtreme[T kernel.Numeric](table *[numKinds]FusedFn, k int, better func(v, best T) bool) {
	table[k] = wrapFused(func(base []T, rowStride, nRows int, dst []T, nCols int) {
		fusedExtreme(base, rowStride, nRows, dst, nCols, better)
	})
}

func registerFusedArg[T kernel.Numeric](table *[numKinds]FusedArgFn, k int, better func(v, best T) bool) {
	table[k] = wrapFusedArg(func(base []T, rowStride, nRows int, bestVal []T, bestIdx []int64, nCols int) {
		fusedArg(base, rowStride, nRows, bestVal, bestIdx, nCols, better)
	})
}

func init() {
	FusedSumTable[KInt8] = wrapFused(fusedSum[int8])
	FusedSumTable[KInt16] = wrapFused(fusedSum[int16])
	FusedSumTable[KInt32] = wrapFused(fusedSum[int32])
	FusedSumTable[KInt64] = wrapFused(fusedSum[int64])
	FusedSumTable[KUint8] = wrapFused(fusedSum[uint8])
	FusedSumTable[KUint16] = wrapFused(fusedSum[uint16])
	FusedSumTable[KUint32] = wrapFused(fusedSum[uint32])
	FusedSumTable[KUint64] = wrapFused(fusedSum[uint64])
	FusedSumTable[KFloat32] = wrapFused(fusedSum[float32])
	FusedSumTable[KFloat64] = wrapFused(fusedSum[float64])

	registerFusedExtreme(&FusedMaxTable, KInt8, greaterT[int8])
	registerFusedExtreme(&FusedMaxTable, KInt16, greaterT[int16])
	registerFusedExtreme(&FusedMaxTable, KInt32, greaterT[int32])
	registerFusedExtreme(&FusedMaxTable, KInt64, greaterT[int64])
	registerFusedExtreme(&FusedMaxTable, KUint8, greaterT[uint8])
	registerFusedExtreme(&FusedMaxTable, KUint16, greaterT[uint16])
	registerFusedExtreme(&FusedMaxTable, KUint32, greaterT[uint32])
	registerFusedExtreme(&FusedMaxTable, KUint64, greaterT[uint64])
	registerFusedExtreme(&FusedMaxTable, KFloat32, greaterT[float32])
	registerFusedExtreme(&FusedMaxTable, KFloat64, greaterT[float64])

	registerFusedExtreme(&FusedMinTable, KInt8, lessT[int8])
	registerFusedExtreme(&FusedMinTable, KInt16, lessT[int16])
	registerFusedExtreme(&FusedMinTable, KInt32, lessT[int32])
	registerFusedExtreme(&FusedMinTable, KInt64, lessT[int64])
	registerFusedExtreme(&FusedMinTable, KUint8, lessT[uint8])
	registerFusedExtreme(&FusedMinTable, KUint16, lessT[uint16])
	registerFusedExtreme(&FusedMinTable, KUint32, lessT[uint32])
	registerFusedExtreme(&FusedMinTable, KUint64, lessT[uint64])
	registerFusedExtreme(&FusedMinTable, KFloat32, lessT[float32])
	registerFusedExtreme(&FusedMinTable, KFloat64, lessT[float64])

	registerFusedArg(&FusedArgMaxTable, KInt8, greaterT[int8])
	registerFusedArg(&FusedArgMaxTable, KInt16, greaterT[int16])
	registerFusedArg(&FusedArgMaxTable, KInt32, greaterT[int32])
	registerFusedArg(&FusedArgMaxTable, KInt64, greaterT[int64])
	registerFusedArg(&FusedArgMaxTable, KUint8, greaterT[uint8])
	registerFusedArg(&FusedArgMaxTable, KUint16, greaterT[uint16])
	registerFusedArg(&FusedArgMaxTable, KUint32, greaterT[uint32])
	registerFusedArg(&FusedArgMaxTable, KUint64, greaterT[uint64])
	registerFusedArg(&FusedArgMaxTable, KFloat32, greaterT[float32])
	registerFusedArg(&FusedArgMaxTable, KFloat64, greaterT[float64])

	registerFusedArg(&FusedArgMinTable, KInt8, lessT[int8])
	registerFusedArg(&FusedArgMinTable, KInt16, lessT[int16])
	registerFusedArg(&FusedArgMinTable, KInt32, lessT[int32])
	registerFusedArg(&FusedArgMinTable, KInt64, lessT[int64])
	registerFusedArg(&FusedArgMinTable, KUint8, lessT[uint8])
	registerFusedArg(&FusedArgMinTable, KUint16, lessT[uint16])
	registerFusedArg(&FusedArgMinTable, KUint32, lessT[uint32])
	registerFusedArg(&FusedArgMinTable, KUint64, lessT[uint64])
	registerFusedArg(&FusedArgMinTable, KFloat32, lessT[float32])
	registerFusedArg(&FusedArgMinTable, KFloat64, lessT[float64])

	DivideByCountTable[KInt8] = wrapDivide(divideByCount[int8])
	DivideByCountTable[KInt16] = wrapDivide(divideByCount[int16])
	DivideByCountTable[KInt32] = wrapDivide(divideByCount[int32])
	DivideByCountTable[KInt64] = wrapDivide(divideByCount[int64])
	DivideByCountTable[KUint8] = wrapDivide(divideByCount[uint8])
	DivideByCountTable[KUint16] = wrapDivide(divideByCount[uint16])
	DivideByCountTable[KUint32] = wrapDivide(divideByCount[uint32])
	DivideByCountTable[KUint64] = wrapDivide(divideByCount[uint64])
	DivideByCountTable[KFloat32] = wrapDivide(divideByCount[float32])
	DivideByCountTable[KFloat64] = wrapDivide(divideByCount[float64])
}
