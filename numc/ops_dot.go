package numc

import "github.com/csotherden/numc/internal/reduce"

// Dot computes the 1-D dot product Σ a[i]*b[i] and writes it into out, a
// shape-(1,) array of a's kind. Float variants route the per-element
// products through pairwise summation on the contiguous fast path,
// matching ordinary Sum.
func Dot(a, b, out *Array) error {
	if err := checkDot("dot", a, b, out); err != nil {
		return err
	}
	kidx := int(a.kind)
	sa, sb := a.elemStrides()[0], b.elemStrides()[0]
	v := reduce.DotTable[kidx](a.Data(), b.Data(), a.size, sa, sb)
	setElem(a.kind, out.Data(), 0, v)
	return nil
}
