package kernel

import (
	"github.com/chewxy/math32"
	"gorgonia.org/vecf32"
)

// vecAddF32, vecSubF32, vecMulF32, and vecDivF32 back the float32 binary
// dispatch-table entries. On the contiguous fast path (every stride equal
// to the element size) they delegate to gorgonia.org/vecf32's batched
// arithmetic. vecf32's functions mutate their first argument in place, so
// out is first seeded with a's contents; seed also protects b from being
// clobbered by that seed copy when out aliases b instead of a. Strided
// operands fall back to the generic element loop.
func vecAddF32(a, b, out []float32, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed(out, a, b)
		vecf32.Add(out, b)
		return
	}
	binaryLoop(addOp[float32])(a, b, out, n, sa, sb, so)
}

func vecSubF32(a, b, out []float32, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed(out, a, b)
		vecf32.Sub(out, b)
		return
	}
	binaryLoop(subOp[float32])(a, b, out, n, sa, sb, so)
}

func vecMulF32(a, b, out []float32, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed(out, a, b)
		vecf32.Mul(out, b)
		return
	}
	binaryLoop(mulOp[float32])(a, b, out, n, sa, sb, so)
}

func vecDivF32(a, b, out []float32, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed(out, a, b)
		vecf32.Div(out, b)
		return
	}
	binaryLoop(divOp[float32])(a, b, out, n, sa, sb, so)
}

func fastContig(n, sa, sb, so int) bool { return n > 0 && sa == 1 && sb == 1 && so == 1 }

// seed copies a into out ahead of an in-place vecf32 call, skipping the
// copy when out already aliases a. If out aliases b instead, b is copied
// aside first and the copy is returned, so overwriting out with a never
// clobbers the other operand.
func seed(out, a, b []float32) []float32 {
	if len(out) > 0 && &out[0] == &b[0] && &out[0] != &a[0] {
		tmp := make([]float32, len(b))
		copy(tmp, b)
		b = tmp
	}
	if len(out) == 0 || &out[0] != &a[0] {
		copy(out, a)
	}
	return b
}

// negF32 and absF32 back the unary dispatch tables: float32 negation is a
// sign flip, absF32 is a fabs-equivalent using math32 to avoid a float64
// cast round-trip.
func negF32(x float32) float32 { return -x }
func absF32(x float32) float32 { return math32.Abs(x) }

// expF32 clamps to +Inf above ~88.7 and to 0 below ~-103.97, the float32
// range outside which math32.Exp would otherwise overflow or underflow.
func expF32(x float32) float32 {
	switch {
	case x > 88.7:
		return math32.Inf(1)
	case x < -103.97:
		return 0
	}
	return math32.Exp(x)
}

func logF32(x float32) float32 { return math32.Log(x) }

// sqrtF32 leaves negative inputs as NaN, the native IEEE-754 behavior;
// negative-input clamping for integer kinds happens at the
// integer-promotion layer in mathops.go instead.
func sqrtF32(x float32) float32 { return math32.Sqrt(x) }

func powF32(x, y float32) float32 { return math32.Pow(x, y) }
