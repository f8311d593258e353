package kernel

import (
	"math"

	"gorgonia.org/vecf64"
)

// vecAddF64, vecSubF64, vecMulF64, and vecDivF64 mirror vec32.go for
// float64, delegating to gorgonia.org/vecf64 on the contiguous fast path.
func vecAddF64(a, b, out []float64, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed64(out, a, b)
		vecf64.Add(out, b)
		return
	}
	binaryLoop(addOp[float64])(a, b, out, n, sa, sb, so)
}

func vecSubF64(a, b, out []float64, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed64(out, a, b)
		vecf64.Sub(out, b)
		return
	}
	binaryLoop(subOp[float64])(a, b, out, n, sa, sb, so)
}

func vecMulF64(a, b, out []float64, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed64(out, a, b)
		vecf64.Mul(out, b)
		return
	}
	binaryLoop(mulOp[float64])(a, b, out, n, sa, sb, so)
}

func vecDivF64(a, b, out []float64, n, sa, sb, so int) {
	if fastContig(n, sa, sb, so) {
		a, b, out = a[:n], b[:n], out[:n]
		b = seed64(out, a, b)
		vecf64.Div(out, b)
		return
	}
	binaryLoop(divOp[float64])(a, b, out, n, sa, sb, so)
}

// seed64 mirrors seed (vec32.go) for float64 operands.
func seed64(out, a, b []float64) []float64 {
	if len(out) > 0 && &out[0] == &b[0] && &out[0] != &a[0] {
		tmp := make([]float64, len(b))
		copy(tmp, b)
		b = tmp
	}
	if len(out) == 0 || &out[0] != &a[0] {
		copy(out, a)
	}
	return b
}

func negF64(x float64) float64 { return -x }
func absF64(x float64) float64 { return math.Abs(x) }

// expF64 clamps to +Inf above ~709.8 and to 0 below ~-745.1, the float64
// range outside which math.Exp would otherwise overflow or underflow.
func expF64(x float64) float64 {
	switch {
	case x > 709.8:
		return math.Inf(1)
	case x < -745.1:
		return 0
	}
	return math.Exp(x)
}

func logF64(x float64) float64    { return math.Log(x) }
func sqrtF64(x float64) float64   { return math.Sqrt(x) }
func powF64(x, y float64) float64 { return math.Pow(x, y) }
