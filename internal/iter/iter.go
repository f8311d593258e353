// Package iter implements the coordinate-free multi-cursor ND iterator
// shared by every strided kernel: given a common output shape and, for
// each participating array, its byte strides, it walks every logical
// position in C-order and yields the byte offsets into each array's
// buffer. It never copies data.
//
// The Start/Done/Next/Coord method names and usage pattern
// (`for it.Start(); !it.Done(); it.Next() { ... it.Coord() ... }`)
// mirror a dense tensor iterator's conventional shape, generalized here to
// drive any number of co-iterated arrays at once.
package iter

// Iterator walks a common shape in C-order across one or more arrays whose
// byte strides are registered at construction time. An axis may be
// excluded from the walk (skip >= 0); this is how axis reductions iterate
// every axis except the reduction axis, leaving the caller to scan the
// skipped axis itself using the array's stride along it.
type Iterator struct {
	shape   []int
	skip    int
	axes    []int // iterated axis indices, outer-to-inner (slowest to fastest)
	coord   []int // full-rank coordinate; entries at skip stay 0
	cursors []*cursor
	size    int
	pos     int
}

type cursor struct {
	strides []int
	offset  int
}

// New builds an Iterator over shape, skipping axis skip (pass -1 to iterate
// every axis). strideSets supplies one full-rank byte-stride slice per
// participating array, in the same order offsets are returned.
func New(shape []int, skip int, strideSets ...[]int) *Iterator {
	n := len(shape)
	axes := make([]int, 0, n)
	size := 1
	for i := 0; i < n; i++ {
		if i == skip {
			continue
		}
		axes = append(axes, i)
		size *= shape[i]
	}
	cursors := make([]*cursor, len(strideSets))
	for i, s := range strideSets {
		cursors[i] = &cursor{strides: s}
	}
	return &Iterator{shape: shape, skip: skip, axes: axes, coord: make([]int, n), cursors: cursors, size: size}
}

// Size returns the total number of output positions (product of the
// non-skipped extents).
func (it *Iterator) Size() int { return it.size }

// Start resets the iterator to the first position and returns the byte
// offsets for each registered array at that position.
func (it *Iterator) Start() []int {
	it.pos = 0
	for i := range it.coord {
		it.coord[i] = 0
	}
	for _, c := range it.cursors {
		c.offset = 0
	}
	return it.offsets()
}

// Done reports whether every position has been visited.
func (it *Iterator) Done() bool { return it.pos >= it.size }

// Coord returns a copy of the current full-rank coordinate. The component
// at the skipped axis (if any) is always 0; callers scan that axis
// themselves.
func (it *Iterator) Coord() []int {
	cp := make([]int, len(it.coord))
	copy(cp, it.coord)
	return cp
}

// Next advances the fastest-varying iterated axis, carrying into slower
// axes as needed, and returns the byte offsets at the new position.
func (it *Iterator) Next() []int {
	it.pos++
	for k := len(it.axes) - 1; k >= 0; k-- {
		ax := it.axes[k]
		it.coord[ax]++
		for _, c := range it.cursors {
			c.offset += c.strides[ax]
		}
		if it.coord[ax] < it.shape[ax] {
			break
		}
		for _, c := range it.cursors {
			c.offset -= c.strides[ax] * it.shape[ax]
		}
		it.coord[ax] = 0
	}
	return it.offsets()
}

func (it *Iterator) offsets() []int {
	out := make([]int, len(it.cursors))
	for i, c := range it.cursors {
		out[i] = c.offset
	}
	return out
}
