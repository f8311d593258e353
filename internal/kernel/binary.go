package kernel

// BinaryFn is the dispatch-table entry shape for a binary element-wise op:
// it walks n elements of a and b with element strides sa/sb, writing into
// out with element stride so. Both the contiguous fast path
// (sa == sb == so == 1) and the general strided path share this signature;
// for multi-axis broadcasting the caller invokes it once per position of
// every axis but the last, yielded by the ND iterator (see internal/iter),
// with n set to the extent of the last axis.
type BinaryFn func(a, b, out interface{}, n, sa, sb, so int)

func binaryLoop[T Numeric](op func(a, b T) T) func(a, b, out []T, n, sa, sb, so int) {
	return func(a, b, out []T, n, sa, sb, so int) {
		if sa == 1 && sb == 1 && so == 1 {
			out = out[:n]
			b = b[:n]
			a = a[:n]
			for i := 0; i < n; i++ {
				out[i] = op(a[i], b[i])
			}
			return
		}
		ai, bi, oi := 0, 0, 0
		for i := 0; i < n; i++ {
			out[oi] = op(a[ai], b[bi])
			ai += sa
			bi += sb
			oi += so
		}
	}
}

func wrapBinary[T Numeric](f func(a, b, out []T, n, sa, sb, so int)) BinaryFn {
	return func(a, b, out interface{}, n, sa, sb, so int) {
		f(a.([]T), b.([]T), out.([]T), n, sa, sb, so)
	}
}

func addOp[T Numeric](a, b T) T { return a + b }
func subOp[T Numeric](a, b T) T { return a - b }
func mulOp[T Numeric](a, b T) T { return a * b }

// divOp performs native division: truncating toward zero for integers
// (Go's `/` already does this for both signed and unsigned types), IEEE-754
// for floats. Division by zero is not checked here: float division follows
// IEEE (+-Inf/NaN), integer division by zero panics at the Go runtime
// level.
func divOp[T Numeric](a, b T) T { return a / b }

func maxOp[T Numeric](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func minOp[T Numeric](a, b T) T {
	if a > b {
		return b
	}
	return a
}

func registerBinary[T Numeric](table *[NumKinds]BinaryFn, k int, op func(a, b T) T) {
	table[k] = wrapBinary(binaryLoop(op))
}

// AddTable, SubTable, ... are dispatch tables indexed by numc.Kind (as an
// int: Int8=0 .. Float64=9). Every kind is populated for these ops: add,
// sub, mul, div, maximum and minimum apply uniformly across all ten kinds.
var (
	AddTable      [NumKinds]BinaryFn
	SubTable      [NumKinds]BinaryFn
	MulTable      [NumKinds]BinaryFn
	DivTable      [NumKinds]BinaryFn
	MaximumTable  [NumKinds]BinaryFn
	MinimumTable  [NumKinds]BinaryFn
)

func init() {
	registerBinary(&AddTable, KInt8, addOp[int8])
	registerBinary(&AddTable, KInt16, addOp[int16])
	registerBinary(&AddTable, KInt32, addOp[int32])
	registerBinary(&AddTable, KInt64, addOp[int64])
	registerBinary(&AddTable, KUint8, addOp[uint8])
	registerBinary(&AddTable, KUint16, addOp[uint16])
	registerBinary(&AddTable, KUint32, addOp[uint32])
	registerBinary(&AddTable, KUint64, addOp[uint64])
	AddTable[KFloat32] = wrapBinary(vecAddF32)
	AddTable[KFloat64] = wrapBinary(vecAddF64)

	registerBinary(&SubTable, KInt8, subOp[int8])
	registerBinary(&SubTable, KInt16, subOp[int16])
	registerBinary(&SubTable, KInt32, subOp[int32])
	registerBinary(&SubTable, KInt64, subOp[int64])
	registerBinary(&SubTable, KUint8, subOp[uint8])
	registerBinary(&SubTable, KUint16, subOp[uint16])
	registerBinary(&SubTable, KUint32, subOp[uint32])
	registerBinary(&SubTable, KUint64, subOp[uint64])
	SubTable[KFloat32] = wrapBinary(vecSubF32)
	SubTable[KFloat64] = wrapBinary(vecSubF64)

	registerBinary(&MulTable, KInt8, mulOp[int8])
	registerBinary(&MulTable, KInt16, mulOp[int16])
	registerBinary(&MulTable, KInt32, mulOp[int32])
	registerBinary(&MulTable, KInt64, mulOp[int64])
	registerBinary(&MulTable, KUint8, mulOp[uint8])
	registerBinary(&MulTable, KUint16, mulOp[uint16])
	registerBinary(&MulTable, KUint32, mulOp[uint32])
	registerBinary(&MulTable, KUint64, mulOp[uint64])
	MulTable[KFloat32] = wrapBinary(vecMulF32)
	MulTable[KFloat64] = wrapBinary(vecMulF64)

	registerBinary(&DivTable, KInt8, divOp[int8])
	registerBinary(&DivTable, KInt16, divOp[int16])
	registerBinary(&DivTable, KInt32, divOp[int32])
	registerBinary(&DivTable, KInt64, divOp[int64])
	registerBinary(&DivTable, KUint8, divOp[uint8])
	registerBinary(&DivTable, KUint16, divOp[uint16])
	registerBinary(&DivTable, KUint32, divOp[uint32])
	registerBinary(&DivTable, KUint64, divOp[uint64])
	DivTable[KFloat32] = wrapBinary(vecDivF32)
	DivTable[KFloat64] = wrapBinary(vecDivF64)

	registerBinary(&MaximumTable, KInt8, maxOp[int8])
	registerBinary(&MaximumTable, KInt16, maxOp[int16])
	registerBinary(&MaximumTable, KInt32, maxOp[int32])
	registerBinary(&MaximumTable, KInt64, maxOp[int64])
	registerBinary(&MaximumTable, KUint8, maxOp[uint8])
	registerBinary(&MaximumTable, KUint16, maxOp[uint16])
	registerBinary(&MaximumTable, KUint32, maxOp[uint32])
	registerBinary(&MaximumTable, KUint64, maxOp[uint64])
	registerBinary(&MaximumTable, KFloat32, maxOp[float32])
	registerBinary(&MaximumTable, KFloat64, maxOp[float64])

	registerBinary(&MinimumTable, KInt8, minOp[int8])
	registerBinary(&MinimumTable, KInt16, minOp[int16])
	registerBinary(&MinimumTable, KInt32, minOp[int32])
	registerBinary(&MinimumTable, KInt64, minOp[int64])
	registerBinary(&MinimumTable, KUint8, minOp[uint8])
	registerBinary(&MinimumTable, KUint16, minOp[uint16])
	registerBinary(&MinimumTable, KUint32, minOp[uint32])
	registerBinary(&MinimumTable, KUint64, minOp[uint64])
	registerBinary(&MinimumTable, KFloat32, minOp[float32])
	registerBinary(&MinimumTable, KFloat64, minOp[float64])
}

// Kind index constants mirror numc.Kind's iota ordering without importing
// numc (which would create an import cycle, since the numc package imports
// this package to drive dispatch).
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
)
