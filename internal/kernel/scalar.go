package kernel

// ScalarFn is the dispatch-table entry for a scalar-broadcast op (spec
// §4.E): the double-precision scalar operand is cast to the element kind
// once at kernel entry, then a flat (or strided) loop runs the op.
// In-place variants write back into a by passing out == a.
type ScalarFn func(a, out interface{}, n, sa, so int, scalar float64)

func scalarLoop[T Numeric](op func(a, s T) T) func(a, out []T, n, sa, so int, s T) {
	return func(a, out []T, n, sa, so int, s T) {
		if sa == 1 && so == 1 {
			a, out = a[:n], out[:n]
			for i := 0; i < n; i++ {
				out[i] = op(a[i], s)
			}
			return
		}
		ai, oi := 0, 0
		for i := 0; i < n; i++ {
			out[oi] = op(a[ai], s)
			ai += sa
			oi += so
		}
	}
}

func wrapScalar[T Numeric](f func(a, out []T, n, sa, so int, s T)) ScalarFn {
	return func(a, out interface{}, n, sa, so int, scalar float64) {
		f(a.([]T), out.([]T), n, sa, so, T(scalar))
	}
}

var (
	AddScalarTable [NumKinds]ScalarFn
	SubScalarTable [NumKinds]ScalarFn
	MulScalarTable [NumKinds]ScalarFn
	DivScalarTable [NumKinds]ScalarFn
)

func registerScalar[T Numeric](table *[NumKinds]ScalarFn, k int, op func(a, s T) T) {
	table[k] = wrapScalar(scalarLoop(op))
}

func init() {
	registerScalar(&AddScalarTable, KInt8, addOp[int8])
	registerScalar(&AddScalarTable, KInt16, addOp[int16])
	registerScalar(&AddScalarTable, KInt32, addOp[int32])
	registerScalar(&AddScalarTable, KInt64, addOp[int64])
	registerScalar(&AddScalarTable, KUint8, addOp[uint8])
	registerScalar(&AddScalarTable, KUint16, addOp[uint16])
	registerScalar(&AddScalarTable, KUint32, addOp[uint32])
	registerScalar(&AddScalarTable, KUint64, addOp[uint64])
	registerScalar(&AddScalarTable, KFloat32, addOp[float32])
	registerScalar(&AddScalarTable, KFloat64, addOp[float64])

	registerScalar(&SubScalarTable, KInt8, subOp[int8])
	registerScalar(&SubScalarTable, KInt16, subOp[int16])
	registerScalar(&SubScalarTable, KInt32, subOp[int32])
	registerScalar(&SubScalarTable, KInt64, subOp[int64])
	registerScalar(&SubScalarTable, KUint8, subOp[uint8])
	registerScalar(&SubScalarTable, KUint16, subOp[uint16])
	registerScalar(&SubScalarTable, KUint32, subOp[uint32])
	registerScalar(&SubScalarTable, KUint64, subOp[uint64])
	registerScalar(&SubScalarTable, KFloat32, subOp[float32])
	registerScalar(&SubScalarTable, KFloat64, subOp[float64])

	registerScalar(&MulScalarTable, KInt8, mulOp[int8])
	registerScalar(&MulScalarTable, KInt16, mulOp[int16])
	registerScalar(&MulScalarTable, KInt32, mulOp[int32])
	registerScalar(&MulScalarTable, KInt64, mulOp[int64])
	registerScalar(&MulScalarTable, KUint8, mulOp[uint8])
	registerScalar(&MulScalarTable, KUint16, mulOp[uint16])
	registerScalar(&MulScalarTable, KUint32, mulOp[uint32])
	registerScalar(&MulScalarTable, KUint64, mulOp[uint64])
	registerScalar(&MulScalarTable, KFloat32, mulOp[float32])
	registerScalar(&MulScalarTable, KFloat64, mulOp[float64])

	registerScalar(&DivScalarTable, KInt8, divOp[int8])
	registerScalar(&DivScalarTable, KInt16, divOp[int16])
	registerScalar(&DivScalarTable, KInt32, divOp[int32])
	registerScalar(&DivScalarTable, KInt64, divOp[int64])
	registerScalar(&DivScalarTable, KUint8, divOp[uint8])
	registerScalar(&DivScalarTable, KUint16, divOp[uint16])
	registerScalar(&DivScalarTable, KUint32, divOp[uint32])
	registerScalar(&DivScalarTable, KUint64, divOp[uint64])
	registerScalar(&DivScalarTable, KFloat32, divOp[float32])
	registerScalar(&DivScalarTable, KFloat64, divOp[float64])
}
