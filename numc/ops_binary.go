package numc

import "github.com/csotherden/numc/internal/kernel"

// Add computes out = a + b with NumPy-style broadcasting. a, b and out
// must share a kind; out's shape must equal broadcast(a.shape, b.shape).
// Passing out == a or out == b performs the operation in place; every
// kernel, including the contiguous float fast path, is careful to read an
// operand before any write that might alias it.
func Add(a, b, out *Array) error {
	if err := checkBinary("add", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.AddTable[a.kind], a, b, out)
	return nil
}

// Sub computes out = a - b. See Add for validation and aliasing rules.
func Sub(a, b, out *Array) error {
	if err := checkBinary("sub", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.SubTable[a.kind], a, b, out)
	return nil
}

// Mul computes out = a * b. See Add for validation and aliasing rules.
func Mul(a, b, out *Array) error {
	if err := checkBinary("mul", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.MulTable[a.kind], a, b, out)
	return nil
}

// Div computes out = a / b: truncating for integer kinds, IEEE-754 for
// floats. Division by zero is not validated; it follows the underlying
// Go semantics for the element kind.
func Div(a, b, out *Array) error {
	if err := checkBinary("div", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.DivTable[a.kind], a, b, out)
	return nil
}

// Maximum computes out[i] = max(a[i], b[i]) elementwise, with broadcasting.
func Maximum(a, b, out *Array) error {
	if err := checkBinary("maximum", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.MaximumTable[a.kind], a, b, out)
	return nil
}

// Minimum computes out[i] = min(a[i], b[i]) elementwise, with broadcasting.
func Minimum(a, b, out *Array) error {
	if err := checkBinary("minimum", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.MinimumTable[a.kind], a, b, out)
	return nil
}

// Pow computes out = a ** b elementwise, with broadcasting. Floats use the
// hardware pow; integer kinds exponentiate by squaring, with x^0 == 1,
// x^1 == x, and negative exponents truncating to 0 unless the base has
// unit magnitude.
func Pow(a, b, out *Array) error {
	if err := checkBinary("pow", a, b, out); err != nil {
		return err
	}
	binaryExec(kernel.PowTable[a.kind], a, b, out)
	return nil
}

// AddInplace is Add(a, b, a): a += b. b must broadcast to a's shape
// unchanged (an in-place destination cannot grow to a larger broadcast
// result).
func (a *Array) AddInplace(b *Array) error { return Add(a, b, a) }

// SubInplace is Sub(a, b, a): a -= b.
func (a *Array) SubInplace(b *Array) error { return Sub(a, b, a) }

// MulInplace is Mul(a, b, a): a *= b.
func (a *Array) MulInplace(b *Array) error { return Mul(a, b, a) }

// DivInplace is Div(a, b, a): a /= b.
func (a *Array) DivInplace(b *Array) error { return Div(a, b, a) }

// MaximumInplace is Maximum(a, b, a).
func (a *Array) MaximumInplace(b *Array) error { return Maximum(a, b, a) }

// MinimumInplace is Minimum(a, b, a).
func (a *Array) MinimumInplace(b *Array) error { return Minimum(a, b, a) }

// PowInplace is Pow(a, b, a): a **= b.
func (a *Array) PowInplace(b *Array) error { return Pow(a, b, a) }
