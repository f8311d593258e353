package shape

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowMajorStridesIsContiguous(t *testing.T) {
	strides := RowMajorStrides([]int{2, 3, 4}, 4)
	require.Equal(t, []int{48, 16, 4}, strides)
	require.True(t, IsContiguous([]int{2, 3, 4}, strides, 4))
}

func TestIsContiguousRejectsPermutedStrides(t *testing.T) {
	require.False(t, IsContiguous([]int{2, 3}, []int{4, 12}, 4))
}

func TestBroadcastRightAlignsAndExpands(t *testing.T) {
	out, err := Broadcast([]int{3, 1}, []int{1, 4})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, out)

	out, err = Broadcast([]int{5}, []int{3, 5})
	require.NoError(t, err)
	require.Equal(t, []int{3, 5}, out)
}

func TestBroadcastRejectsIncompatibleShapes(t *testing.T) {
	_, err := Broadcast([]int{3, 2}, []int{4, 2})
	require.Error(t, err)
}

func TestBroadcastStridesZeroesExpandedAxes(t *testing.T) {
	target := []int{3, 4}
	strides := BroadcastStrides(target, []int{3, 1}, []int{4, 4})
	require.Equal(t, []int{4, 0}, strides)

	strides = BroadcastStrides(target, []int{1, 4}, []int{4, 1})
	require.Equal(t, []int{0, 1}, strides)
}

func TestReshapeRejectsSizeMismatch(t *testing.T) {
	_, err := Reshape([]int{2, 3}, []int{4, 2}, 4)
	require.Error(t, err)

	strides, err := Reshape([]int{2, 3}, []int{3, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, []int{8, 4}, strides)
}

func TestTransposeIsInvolutiveUnderInversePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	extents := []int{2, 3, 4, 5}
	strides := RowMajorStrides(extents, 4)

	for trial := 0; trial < 20; trial++ {
		perm := rng.Perm(len(extents))
		inverse := make([]int, len(perm))
		for i, p := range perm {
			inverse[p] = i
		}
		shape1, strides1, err := Transpose(extents, strides, perm)
		require.NoError(t, err)
		shape2, strides2, err := Transpose(shape1, strides1, inverse)
		require.NoError(t, err)
		require.Equal(t, extents, shape2)
		require.Equal(t, strides, strides2)
	}
}

func TestTransposeRejectsNonBijection(t *testing.T) {
	_, _, err := Transpose([]int{2, 3}, []int{12, 4}, []int{0, 0})
	require.Error(t, err)
	_, _, err = Transpose([]int{2, 3}, []int{12, 4}, []int{0, 2})
	require.Error(t, err)
}

func TestSliceFullRangeIsIdentity(t *testing.T) {
	extents := []int{5}
	strides := []int{4}
	newExtent, newStride, off, err := Slice(extents, strides, 0, 0, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 5, newExtent)
	require.Equal(t, 4, newStride)
	require.Equal(t, 0, off)
}

func TestSliceWithStep(t *testing.T) {
	newExtent, newStride, off, err := Slice([]int{10}, []int{4}, 0, 1, 9, 2)
	require.NoError(t, err)
	require.Equal(t, 4, newExtent)
	require.Equal(t, 8, newStride)
	require.Equal(t, 4, off)
}

func TestSliceRejectsOutOfRange(t *testing.T) {
	_, _, _, err := Slice([]int{5}, []int{4}, 0, 0, 6, 1)
	require.Error(t, err)
	_, _, _, err = Slice([]int{5}, []int{4}, 1, 0, 5, 1)
	require.Error(t, err)
	_, _, _, err = Slice([]int{5}, []int{4}, 0, 0, 5, 0)
	require.Error(t, err)
}

func TestNonReducedContiguousDetectsRowMajorBlock(t *testing.T) {
	extents := []int{2, 3}
	strides := RowMajorStrides(extents, 4)
	// Reducing axis 1 leaves axis 0 with stride 12, not the element stride
	// 4 a contiguous (2,) block would need.
	require.False(t, NonReducedContiguous(extents, strides, 4, 1))
	require.True(t, NonReducedContiguous(extents, strides, 4, 0))
}
