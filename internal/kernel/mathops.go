package kernel

// PowTable reuses BinaryFn (the exponent is a per-element second operand);
// ExpTable/LogTable/SqrtTable reuse UnaryFn.
var (
	ExpTable  [NumKinds]UnaryFn
	LogTable  [NumKinds]UnaryFn
	SqrtTable [NumKinds]UnaryFn
	PowTable  [NumKinds]BinaryFn
)

// promote32[T] promotes an integer of width <= 32 bits to float32,
// evaluates f, and truncates back toward zero -- Go's float-to-integer
// conversion already truncates toward zero, which is what exp/log/sqrt on
// integer kinds need.
func promote32[T Integer](f func(float32) float32) func(T) T {
	return func(x T) T { return T(f(float32(x))) }
}

func promote64[T Integer](f func(float64) float64) func(T) T {
	return func(x T) T { return T(f(float64(x))) }
}

// sqrtIntClamp32 and sqrtIntClamp64 clamp negative integer inputs to 0 before promoting; an
// integer sqrt has no meaningful result for a negative input.
func sqrtIntClamp32[T Signed](x T) T {
	if x < 0 {
		x = 0
	}
	return T(sqrtF32(float32(x)))
}

func sqrtIntClamp32U[T Integer](x T) T { return T(sqrtF32(float32(x))) }

func sqrtIntClamp64[T Signed](x T) T {
	if x < 0 {
		x = 0
	}
	return T(sqrtF64(float64(x)))
}

func init() {
	// exp: ints promote through float32 (<=32-bit) or float64 (64-bit).
	ExpTable[KInt8] = wrapUnary(unaryLoop(promote32[int8](expF32)))
	ExpTable[KInt16] = wrapUnary(unaryLoop(promote32[int16](expF32)))
	ExpTable[KInt32] = wrapUnary(unaryLoop(promote32[int32](expF32)))
	ExpTable[KInt64] = wrapUnary(unaryLoop(promote64[int64](expF64)))
	ExpTable[KUint8] = wrapUnary(unaryLoop(promote32[uint8](expF32)))
	ExpTable[KUint16] = wrapUnary(unaryLoop(promote32[uint16](expF32)))
	ExpTable[KUint32] = wrapUnary(unaryLoop(promote32[uint32](expF32)))
	ExpTable[KUint64] = wrapUnary(unaryLoop(promote64[uint64](expF64)))
	ExpTable[KFloat32] = wrapUnary(unaryLoop(expF32))
	ExpTable[KFloat64] = wrapUnary(unaryLoop(expF64))

	LogTable[KInt8] = wrapUnary(unaryLoop(promote32[int8](logF32)))
	LogTable[KInt16] = wrapUnary(unaryLoop(promote32[int16](logF32)))
	LogTable[KInt32] = wrapUnary(unaryLoop(promote32[int32](logF32)))
	LogTable[KInt64] = wrapUnary(unaryLoop(promote64[int64](logF64)))
	LogTable[KUint8] = wrapUnary(unaryLoop(promote32[uint8](logF32)))
	LogTable[KUint16] = wrapUnary(unaryLoop(promote32[uint16](logF32)))
	LogTable[KUint32] = wrapUnary(unaryLoop(promote32[uint32](logF32)))
	LogTable[KUint64] = wrapUnary(unaryLoop(promote64[uint64](logF64)))
	LogTable[KFloat32] = wrapUnary(unaryLoop(logF32))
	LogTable[KFloat64] = wrapUnary(unaryLoop(logF64))

	SqrtTable[KInt8] = wrapUnary(unaryLoop(sqrtIntClamp32[int8]))
	SqrtTable[KInt16] = wrapUnary(unaryLoop(sqrtIntClamp32[int16]))
	SqrtTable[KInt32] = wrapUnary(unaryLoop(sqrtIntClamp32[int32]))
	SqrtTable[KInt64] = wrapUnary(unaryLoop(sqrtIntClamp64[int64]))
	SqrtTable[KUint8] = wrapUnary(unaryLoop(sqrtIntClamp32U[uint8]))
	SqrtTable[KUint16] = wrapUnary(unaryLoop(sqrtIntClamp32U[uint16]))
	SqrtTable[KUint32] = wrapUnary(unaryLoop(sqrtIntClamp32U[uint32]))
	SqrtTable[KUint64] = wrapUnary(unaryLoop(func(x uint64) uint64 { return uint64(sqrtF64(float64(x))) }))
	SqrtTable[KFloat32] = wrapUnary(unaryLoop(sqrtF32))
	SqrtTable[KFloat64] = wrapUnary(unaryLoop(sqrtF64))

	PowTable[KInt8] = wrapBinary(binaryLoop(powSigned[int8]))
	PowTable[KInt16] = wrapBinary(binaryLoop(powSigned[int16]))
	PowTable[KInt32] = wrapBinary(binaryLoop(powSigned[int32]))
	PowTable[KInt64] = wrapBinary(binaryLoop(powSigned[int64]))
	PowTable[KUint8] = wrapBinary(binaryLoop(powUnsigned[uint8]))
	PowTable[KUint16] = wrapBinary(binaryLoop(powUnsigned[uint16]))
	PowTable[KUint32] = wrapBinary(binaryLoop(powUnsigned[uint32]))
	PowTable[KUint64] = wrapBinary(binaryLoop(powUnsigned[uint64]))
	PowTable[KFloat32] = wrapBinary(binaryLoop(powF32))
	PowTable[KFloat64] = wrapBinary(binaryLoop(powF64))
}

// powUnsigned exponentiates by squaring; negative exponents cannot occur
// for an unsigned type, so no edge-case branch is needed.
func powUnsigned[T Integer](base, exp T) T {
	if exp == 0 {
		return 1
	}
	if exp == 1 {
		return base
	}
	var result T = 1
	b, e := base, exp
	for e > 0 {
		if e&1 == 1 {
			result *= b
		}
		b *= b
		e >>= 1
	}
	return result
}

// powSigned implements the signed integer pow edge cases: x^0 == 1 for any
// x, x^1 == x, negative exponent with |x| > 1 truncates to 0, negative
// exponent with |x| == 1 returns +-1 by exponent parity.
func powSigned[T Signed](base, exp T) T {
	if exp == 0 {
		return 1
	}
	if exp == 1 {
		return base
	}
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 != 0 {
				return -1
			}
			return 1
		default:
			return 0
		}
	}
	var result T = 1
	b, e := base, exp
	for e > 0 {
		if e&1 == 1 {
			result *= b
		}
		b *= b
		e >>= 1
	}
	return result
}

// ClipFn clips every element of a into [lo, hi]: out[i] = max(lo, min(hi,
// a[i])). lo and hi arrive as float64 and are cast to T once at kernel entry.
type ClipFn func(a, out interface{}, n, sa, so int, lo, hi float64)

func clipLoop[T Numeric](a, out []T, n, sa, so int, lo, hi T) {
	apply := func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	if sa == 1 && so == 1 {
		a, out = a[:n], out[:n]
		for i := 0; i < n; i++ {
			out[i] = apply(a[i])
		}
		return
	}
	ai, oi := 0, 0
	for i := 0; i < n; i++ {
		out[oi] = apply(a[ai])
		ai += sa
		oi += so
	}
}

func wrapClip[T Numeric](f func(a, out []T, n, sa, so int, lo, hi T)) ClipFn {
	return func(a, out interface{}, n, sa, so int, lo, hi float64) {
		f(a.([]T), out.([]T), n, sa, so, T(lo), T(hi))
	}
}

var ClipTable [NumKinds]ClipFn

func init() {
	ClipTable[KInt8] = wrapClip(clipLoop[int8])
	ClipTable[KInt16] = wrapClip(clipLoop[int16])
	ClipTable[KInt32] = wrapClip(clipLoop[int32])
	ClipTable[KInt64] = wrapClip(clipLoop[int64])
	ClipTable[KUint8] = wrapClip(clipLoop[uint8])
	ClipTable[KUint16] = wrapClip(clipLoop[uint16])
	ClipTable[KUint32] = wrapClip(clipLoop[uint32])
	ClipTable[KUint64] = wrapClip(clipLoop[uint64])
	ClipTable[KFloat32] = wrapClip(clipLoop[float32])
	ClipTable[KFloat64] = wrapClip(clipLoop[float64])
}
