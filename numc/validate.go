package numc

import (
	"github.com/csotherden/numc/internal/shape"
)

func checkArrayNull(op string, arrays ...*Array) error {
	for _, a := range arrays {
		if a == nil {
			return newError(ErrNull, op, "required array argument is nil")
		}
	}
	return nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkBinary validates the common binary-op prologue: a, b, out share
// a.kind, and out.shape equals broadcast(a.shape, b.shape).
func checkBinary(op string, a, b, out *Array) error {
	if err := checkArrayNull(op, a, b, out); err != nil {
		return err
	}
	if a.kind != b.kind || a.kind != out.kind {
		return newError(ErrType, op, "operand kinds disagree: %s, %s -> %s", a.kind, b.kind, out.kind)
	}
	want, err := shape.Broadcast(a.shape, b.shape)
	if err != nil {
		return newError(ErrShape, op, "%v", err)
	}
	if !shapeEqual(want, out.shape) {
		return newError(ErrShape, op, "output shape %v does not match broadcast result %v", out.shape, want)
	}
	return nil
}

// checkUnary validates a, out share kind and shape exactly; unary and clip
// ops never broadcast.
func checkUnary(op string, a, out *Array) error {
	if err := checkArrayNull(op, a, out); err != nil {
		return err
	}
	if a.kind != out.kind {
		return newError(ErrType, op, "operand kinds disagree: %s -> %s", a.kind, out.kind)
	}
	if !shapeEqual(a.shape, out.shape) {
		return newError(ErrShape, op, "output shape %v does not match input shape %v", out.shape, a.shape)
	}
	return nil
}

func checkSignedOnly(op string, a *Array) error {
	if a.kind.IsUnsigned() {
		return newError(ErrType, op, "unsigned kind %s is not accepted", a.kind)
	}
	return nil
}

// checkReduceFull validates the common full-reduction prologue: out's
// kind must match wantKind (the input kind for sum/mean/min/max/prod,
// always Int64 for argmin/argmax), and out's shape must be the
// single-element (1,).
func checkReduceFull(op string, a, out *Array, wantKind Kind) error {
	if err := checkArrayNull(op, a, out); err != nil {
		return err
	}
	if out.kind != wantKind {
		return newError(ErrType, op, "output kind %s does not match expected %s", out.kind, wantKind)
	}
	if !shapeEqual(out.shape, []int{1}) {
		return newError(ErrShape, op, "output shape %v must be (1,)", out.shape)
	}
	return nil
}

// reducedShape computes the output shape of an axis reduction: shape with
// axis deleted (keepdim == false) or replaced by extent 1 (keepdim ==
// true).
func reducedShape(in []int, axis int, keepdim bool) []int {
	if keepdim {
		out := append([]int(nil), in...)
		out[axis] = 1
		return out
	}
	out := make([]int, 0, len(in)-1)
	for i, e := range in {
		if i != axis {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		out = []int{1}
	}
	return out
}

// checkReduceAxis validates the common axis-reduction prologue: axis must
// be in range, out's kind must match wantKind, and out's shape must equal
// the reduced shape for axis/keepdim.
func checkReduceAxis(op string, a, out *Array, axis int, keepdim bool, wantKind Kind) error {
	if err := checkArrayNull(op, a, out); err != nil {
		return err
	}
	if axis < 0 || axis >= len(a.shape) {
		return newError(ErrShape, op, "axis %d out of range for rank %d", axis, len(a.shape))
	}
	if out.kind != wantKind {
		return newError(ErrType, op, "output kind %s does not match expected %s", out.kind, wantKind)
	}
	want := reducedShape(a.shape, axis, keepdim)
	if !shapeEqual(out.shape, want) {
		return newError(ErrShape, op, "output shape %v does not match expected %v", out.shape, want)
	}
	return nil
}

// checkDot validates the 1-D dot product prologue: a and b must be
// rank-1, share a.kind, and share a.size; out must have the same kind and
// shape (1,).
func checkDot(op string, a, b, out *Array) error {
	if err := checkArrayNull(op, a, b, out); err != nil {
		return err
	}
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return newError(ErrShape, op, "dot requires rank-1 operands, got ranks %d and %d", len(a.shape), len(b.shape))
	}
	if a.kind != b.kind || a.kind != out.kind {
		return newError(ErrType, op, "operand kinds disagree: %s, %s -> %s", a.kind, b.kind, out.kind)
	}
	if a.size != b.size {
		return newError(ErrShape, op, "dot requires equal length operands, got %d and %d", a.size, b.size)
	}
	if !shapeEqual(out.shape, []int{1}) {
		return newError(ErrShape, op, "output shape %v must be (1,)", out.shape)
	}
	return nil
}
