package kernel

// UnaryFn is the dispatch-table entry shape for a unary element-wise op:
// same shape as BinaryFn, minus the second operand.
type UnaryFn func(a, out interface{}, n, sa, so int)

func unaryLoop[T Numeric](op func(T) T) func(a, out []T, n, sa, so int) {
	return func(a, out []T, n, sa, so int) {
		if sa == 1 && so == 1 {
			a, out = a[:n], out[:n]
			for i := 0; i < n; i++ {
				out[i] = op(a[i])
			}
			return
		}
		ai, oi := 0, 0
		for i := 0; i < n; i++ {
			out[oi] = op(a[ai])
			ai += sa
			oi += so
		}
	}
}

func wrapUnary[T Numeric](f func(a, out []T, n, sa, so int)) UnaryFn {
	return func(a, out interface{}, n, sa, so int) {
		f(a.([]T), out.([]T), n, sa, so)
	}
}

// negSigned is two's-complement negation: overflow silently wraps in Go's
// fixed-width integer arithmetic, reproducing the documented
// "neg(INT_MIN) == INT_MIN" edge case without special-casing it.
func negSigned[T Signed](x T) T { return -x }

// absSigned is signed-integer abs with the same wrap-around edge case at
// the type minimum: abs(INT_MIN) == INT_MIN, since -INT_MIN overflows back
// to INT_MIN in two's complement.
func absSigned[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// NegTable and AbsTable are populated only for signed integer and float
// kinds; unsigned entries are left nil so the public layer reports
// ERR_TYPE instead of dispatching into an unpopulated table slot.
var (
	NegTable [NumKinds]UnaryFn
	AbsTable [NumKinds]UnaryFn
)

func init() {
	NegTable[KInt8] = wrapUnary(unaryLoop(negSigned[int8]))
	NegTable[KInt16] = wrapUnary(unaryLoop(negSigned[int16]))
	NegTable[KInt32] = wrapUnary(unaryLoop(negSigned[int32]))
	NegTable[KInt64] = wrapUnary(unaryLoop(negSigned[int64]))
	NegTable[KFloat32] = wrapUnary(unaryLoop(negF32))
	NegTable[KFloat64] = wrapUnary(unaryLoop(negF64))

	AbsTable[KInt8] = wrapUnary(unaryLoop(absSigned[int8]))
	AbsTable[KInt16] = wrapUnary(unaryLoop(absSigned[int16]))
	AbsTable[KInt32] = wrapUnary(unaryLoop(absSigned[int32]))
	AbsTable[KInt64] = wrapUnary(unaryLoop(absSigned[int64]))
	AbsTable[KFloat32] = wrapUnary(unaryLoop(absF32))
	AbsTable[KFloat64] = wrapUnary(unaryLoop(absF64))
}
