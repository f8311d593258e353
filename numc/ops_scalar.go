package numc

import "github.com/csotherden/numc/internal/kernel"

// AddScalar computes out = a + scalar elementwise. scalar is a double
// operand cast to a's element kind once at kernel entry.
func AddScalar(a, out *Array, scalar float64) error {
	if err := checkUnary("add_scalar", a, out); err != nil {
		return err
	}
	scalarExec(kernel.AddScalarTable[a.kind], a, out, scalar)
	return nil
}

// SubScalar computes out = a - scalar elementwise.
func SubScalar(a, out *Array, scalar float64) error {
	if err := checkUnary("sub_scalar", a, out); err != nil {
		return err
	}
	scalarExec(kernel.SubScalarTable[a.kind], a, out, scalar)
	return nil
}

// MulScalar computes out = a * scalar elementwise.
func MulScalar(a, out *Array, scalar float64) error {
	if err := checkUnary("mul_scalar", a, out); err != nil {
		return err
	}
	scalarExec(kernel.MulScalarTable[a.kind], a, out, scalar)
	return nil
}

// DivScalar computes out = a / scalar elementwise.
func DivScalar(a, out *Array, scalar float64) error {
	if err := checkUnary("div_scalar", a, out); err != nil {
		return err
	}
	scalarExec(kernel.DivScalarTable[a.kind], a, out, scalar)
	return nil
}

// AddScalarInplace is AddScalar(a, a, scalar): a += scalar.
func (a *Array) AddScalarInplace(scalar float64) error { return AddScalar(a, a, scalar) }

// SubScalarInplace is SubScalar(a, a, scalar): a -= scalar.
func (a *Array) SubScalarInplace(scalar float64) error { return SubScalar(a, a, scalar) }

// MulScalarInplace is MulScalar(a, a, scalar): a *= scalar.
func (a *Array) MulScalarInplace(scalar float64) error { return MulScalar(a, a, scalar) }

// DivScalarInplace is DivScalar(a, a, scalar): a /= scalar.
func (a *Array) DivScalarInplace(scalar float64) error { return DivScalar(a, a, scalar) }
