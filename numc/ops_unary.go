package numc

import "github.com/csotherden/numc/internal/kernel"

// Neg computes out = -a elementwise: two's-complement negation for signed
// integers (wraps at the type minimum: neg(INT_MIN) == INT_MIN) and a sign
// flip for floats. Unsigned kinds are rejected with ERR_TYPE.
func Neg(a, out *Array) error {
	if err := checkUnary("neg", a, out); err != nil {
		return err
	}
	if err := checkSignedOnly("neg", a); err != nil {
		return err
	}
	unaryExec(kernel.NegTable[a.kind], a, out)
	return nil
}

// Abs computes out = |a| elementwise, with the same signed-integer
// wrap-around edge case as Neg at the type minimum. Unsigned kinds are
// rejected with ERR_TYPE.
func Abs(a, out *Array) error {
	if err := checkUnary("abs", a, out); err != nil {
		return err
	}
	if err := checkSignedOnly("abs", a); err != nil {
		return err
	}
	unaryExec(kernel.AbsTable[a.kind], a, out)
	return nil
}

// Exp computes out = e**a elementwise. Floats are clamped to the
// documented overflow/underflow bounds before the native exp; integer
// kinds promote to the matching-width float kind, evaluate, and truncate
// back toward zero.
func Exp(a, out *Array) error {
	if err := checkUnary("exp", a, out); err != nil {
		return err
	}
	unaryExec(kernel.ExpTable[a.kind], a, out)
	return nil
}

// Log computes out = ln(a) elementwise, following the same
// promote-evaluate-truncate rule as Exp for integer kinds.
func Log(a, out *Array) error {
	if err := checkUnary("log", a, out); err != nil {
		return err
	}
	unaryExec(kernel.LogTable[a.kind], a, out)
	return nil
}

// Sqrt computes out = sqrt(a) elementwise. Negative integer inputs are
// clamped to 0 before the square root is taken; native float sqrt leaves
// negative inputs to produce NaN, the IEEE-754 default.
func Sqrt(a, out *Array) error {
	if err := checkUnary("sqrt", a, out); err != nil {
		return err
	}
	unaryExec(kernel.SqrtTable[a.kind], a, out)
	return nil
}

// Clip computes out[i] = max(lo, min(hi, a[i])) elementwise. lo and hi
// arrive as doubles and are cast to a's element kind once at kernel entry.
func Clip(a, out *Array, lo, hi float64) error {
	if err := checkUnary("clip", a, out); err != nil {
		return err
	}
	clipExec(kernel.ClipTable[a.kind], a, out, lo, hi)
	return nil
}

// NegInplace is Neg(a, a).
func (a *Array) NegInplace() error { return Neg(a, a) }

// AbsInplace is Abs(a, a).
func (a *Array) AbsInplace() error { return Abs(a, a) }

// ExpInplace is Exp(a, a).
func (a *Array) ExpInplace() error { return Exp(a, a) }

// LogInplace is Log(a, a).
func (a *Array) LogInplace() error { return Log(a, a) }

// SqrtInplace is Sqrt(a, a).
func (a *Array) SqrtInplace() error { return Sqrt(a, a) }

// ClipInplace is Clip(a, a, lo, hi).
func (a *Array) ClipInplace(lo, hi float64) error { return Clip(a, a, lo, hi) }
