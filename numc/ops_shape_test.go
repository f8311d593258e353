package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReshapePreservesSizeAndContiguity(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 6})
	require.NoError(t, err)
	require.NoError(t, a.Reshape([]int{3, 4}))
	require.Equal(t, []int{3, 4}, a.Shape())
	require.True(t, a.IsContiguous())
	require.Equal(t, 12, a.Size())
}

func TestReshapeRejectsNonContiguousAndSizeMismatch(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{4, 4})
	require.NoError(t, err)
	require.NoError(t, a.Transpose([]int{1, 0}))
	require.False(t, a.IsContiguous())
	require.Error(t, a.Reshape([]int{16}))

	b, err := Zeros(ctx, Int32, []int{4, 4})
	require.NoError(t, err)
	err = b.Reshape([]int{5, 5})
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestTransposeRoundTrip(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3, 4})
	require.NoError(t, err)
	origShape := a.Shape()
	origStrides := a.Strides()

	perm := []int{2, 0, 1}
	inverse := []int{1, 2, 0}
	require.NoError(t, a.Transpose(perm))
	require.NoError(t, a.Transpose(inverse))

	require.Equal(t, origShape, a.Shape())
	require.Equal(t, origStrides, a.Strides())
}

func TestTransposeRejectsInvalidPermutation(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	err = a.Transpose([]int{0, 0})
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestSliceFullRangeIsNoOpView(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{5})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5}))

	view, err := Slice(a, 0, 0, 5, 1)
	require.NoError(t, err)
	require.Equal(t, a.Shape(), view.Shape())
	require.Equal(t, a.Data().([]int32)[:5], view.Data().([]int32)[:5])
}

func TestSliceViewObservesAncestorMutation(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{5})
	require.NoError(t, err)
	view, err := Slice(a, 0, 1, 4, 1)
	require.NoError(t, err)

	require.NoError(t, Write(a, []int32{10, 20, 30, 40, 50}))
	require.Equal(t, []int32{20, 30, 40}, view.Data().([]int32)[:3])
}

func TestSliceWithStep(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{6})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{0, 1, 2, 3, 4, 5}))

	view, err := Slice(a, 0, 0, 6, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3}, view.Shape())
	require.False(t, view.IsContiguous())

	dst := view.Data().([]int32)
	got := []int32{dst[0], dst[view.Strides()[0]/view.ElemSize()], dst[2*(view.Strides()[0]/view.ElemSize())]}
	require.Equal(t, []int32{0, 2, 4}, got)
}

func TestContiguousMaterialisesTransposedView(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))
	require.NoError(t, a.Transpose([]int{1, 0}))
	require.False(t, a.IsContiguous())

	c, err := Contiguous(ctx, a)
	require.NoError(t, err)
	require.True(t, c.IsContiguous())
	require.Equal(t, []int32{1, 4, 2, 5, 3, 6}, c.Data().([]int32)[:6])
}

func TestReshapeCopyWorksOnNonContiguousSource(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))
	require.NoError(t, a.Transpose([]int{1, 0}))

	b, err := ReshapeCopy(ctx, a, []int{6})
	require.NoError(t, err)
	require.True(t, b.IsContiguous())
	require.Equal(t, []int32{1, 4, 2, 5, 3, 6}, b.Data().([]int32)[:6])
}
