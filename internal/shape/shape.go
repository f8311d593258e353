// Package shape implements the shape algebra of the tensor engine:
// contiguity detection, canonical stride computation, reshape/transpose
// axis validation, slicing, and NumPy-style shape broadcasting. It operates
// on plain shape/stride slices so it has no dependency on the Array type
// and can be reused by the iterator and kernel packages without an import
// cycle.
//
// Strides throughout this package are byte strides: strides[i] is the
// signed byte offset between consecutive elements along axis i.
package shape

import "fmt"

// RowMajorStrides computes the canonical C-order byte strides for shape
// given an element size in bytes.
func RowMajorStrides(extents []int, elemSize int) []int {
	n := len(extents)
	strides := make([]int, n)
	if n == 0 {
		return strides
	}
	strides[n-1] = elemSize
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * extents[i+1]
	}
	return strides
}

// Size returns the product of extents; an empty slice yields 1. The Array
// layer never passes an empty slice, since array creation requires
// rank >= 1.
func Size(extents []int) int {
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}

// IsContiguous walks axes from last to first: strides[rank-1] must equal
// elemSize, and each earlier stride must equal the next stride times the
// next extent.
func IsContiguous(extents, strides []int, elemSize int) bool {
	n := len(extents)
	if n == 0 {
		return true
	}
	if strides[n-1] != elemSize {
		return false
	}
	for i := n - 2; i >= 0; i-- {
		if strides[i] != strides[i+1]*extents[i+1] {
			return false
		}
	}
	return true
}

// NonReducedContiguous reports whether the axes other than axis form a
// contiguous block: scanning from the last axis to the first and skipping
// axis, strides must match the canonical C-order strides for the surviving
// shape. This is the precondition for the fused row-reduce fast path.
func NonReducedContiguous(extents, strides []int, elemSize, axis int) bool {
	n := len(extents)
	expect := elemSize
	first := true
	for i := n - 1; i >= 0; i-- {
		if i == axis {
			continue
		}
		if first {
			if strides[i] != elemSize && extents[i] != 1 {
				// The innermost surviving axis must carry the element
				// stride itself; axes of extent 1 never constrain layout.
				if strides[i] != expect {
					return false
				}
			}
			first = false
			expect = strides[i] * extents[i]
			continue
		}
		if extents[i] == 1 {
			continue
		}
		if strides[i] != expect {
			return false
		}
		expect = strides[i] * extents[i]
	}
	return true
}

// ShapeError reports a shape-algebra violation (ERR_SHAPE at the public
// layer); callers wrap it with the calling function's name.
type ShapeError struct{ msg string }

func (e *ShapeError) Error() string { return e.msg }

func shapeErrf(format string, args ...interface{}) *ShapeError {
	return &ShapeError{msg: fmt.Sprintf(format, args...)}
}

// Reshape validates that newExtents has the same total size as extents and
// returns the canonical C-order strides for newExtents. The caller must
// have already confirmed the source array is contiguous.
func Reshape(extents, newExtents []int, elemSize int) ([]int, error) {
	if Size(extents) != Size(newExtents) {
		return nil, shapeErrf("reshape: size mismatch: %v (%d elems) -> %v (%d elems)",
			extents, Size(extents), newExtents, Size(newExtents))
	}
	return RowMajorStrides(newExtents, elemSize), nil
}

// Transpose applies permutation perm to extents/strides: shape'[i] =
// shape[perm[i]], strides'[i] = strides[perm[i]]. perm must be a bijection
// on {0,...,rank-1}.
func Transpose(extents, strides []int, perm []int) (newExtents, newStrides []int, err error) {
	n := len(extents)
	if len(perm) != n {
		return nil, nil, shapeErrf("transpose: permutation length %d != rank %d", len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, nil, shapeErrf("transpose: invalid permutation %v", perm)
		}
		seen[p] = true
	}
	newExtents = make([]int, n)
	newStrides = make([]int, n)
	for i, p := range perm {
		newExtents[i] = extents[p]
		newStrides[i] = strides[p]
	}
	return newExtents, newStrides, nil
}

// Slice computes the view parameters for slicing axis of a shape with the
// given start/stop/step. stop == 0 is taken to mean "the full extent along
// axis". Returns the new extent along axis, the new stride along axis,
// and the byte offset to add to the base address.
func Slice(extents, strides []int, axis, start, stop, step int) (newExtent, newStride, byteOffset int, err error) {
	n := len(extents)
	if axis < 0 || axis >= n {
		return 0, 0, 0, shapeErrf("slice: axis %d out of range for rank %d", axis, n)
	}
	if step == 0 {
		return 0, 0, 0, shapeErrf("slice: step must not be zero")
	}
	extent := extents[axis]
	if stop == 0 {
		stop = extent
	}
	if start > extent {
		return 0, 0, 0, shapeErrf("slice: start %d > extent %d on axis %d", start, extent, axis)
	}
	if stop > extent {
		return 0, 0, 0, shapeErrf("slice: stop %d > extent %d on axis %d", stop, extent, axis)
	}
	span := stop - start
	if step > 0 {
		newExtent = (span + step - 1) / step
	} else {
		newExtent = (-span + (-step) - 1) / (-step)
	}
	if newExtent < 0 {
		newExtent = 0
	}
	newStride = strides[axis] * step
	byteOffset = start * strides[axis]
	return newExtent, newStride, byteOffset, nil
}

// Broadcast computes the NumPy-style broadcast result shape of a and b:
// shapes are right-aligned, each axis pair (x, y) yields max(x, y) and is
// legal iff x == y or one side is 1; a missing leading axis contributes
// extent 1.
func Broadcast(a, b []int) ([]int, error) {
	na, nb := len(a), len(b)
	n := na
	if nb > n {
		n = nb
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		ea, eb := 1, 1
		if ia := na - n + i; ia >= 0 {
			ea = a[ia]
		}
		if ib := nb - n + i; ib >= 0 {
			eb = b[ib]
		}
		switch {
		case ea == eb:
			out[i] = ea
		case ea == 1:
			out[i] = eb
		case eb == 1:
			out[i] = ea
		default:
			return nil, shapeErrf("broadcast: incompatible shapes %v and %v at aligned axis %d (%d vs %d)", a, b, i, ea, eb)
		}
	}
	return out, nil
}

// BroadcastStrides rewrites origStrides (for origExtents) against a target
// shape produced by Broadcast: axes where the operand has extent 1 but the
// result does not get stride 0, and missing leading axes contribute extent
// 1 / stride 0.
func BroadcastStrides(target []int, origExtents, origStrides []int) []int {
	n := len(target)
	no := len(origExtents)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		io := no - n + i
		if io < 0 {
			out[i] = 0
			continue
		}
		if origExtents[io] == 1 && target[i] != 1 {
			out[i] = 0
		} else {
			out[i] = origStrides[io]
		}
	}
	return out
}
