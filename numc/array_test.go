package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateZerosFillInvariants(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 24, a.Size())
	require.Equal(t, 24*4, a.Capacity())
	require.True(t, a.IsContiguous())

	data := a.Data().([]int32)
	for _, v := range data[:a.Size()] {
		require.Equal(t, int32(0), v)
	}

	f, err := Fill(ctx, Float64, []int{5}, 3.5)
	require.NoError(t, err)
	require.True(t, f.IsContiguous())
	for _, v := range f.Data().([]float64)[:5] {
		require.Equal(t, 3.5, v)
	}
}

func TestCopyIsContiguousAndIndependent(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Fill(ctx, Int32, []int{2, 2}, 7)
	require.NoError(t, err)
	b, err := Copy(ctx, a)
	require.NoError(t, err)
	require.True(t, b.IsContiguous())
	require.Equal(t, a.Shape(), b.Shape())

	require.NoError(t, Write(a, []int32{1, 2, 3, 4}))
	// b must not observe a's mutation: copy is a deep, independent buffer.
	for _, v := range b.Data().([]int32)[:4] {
		require.Equal(t, int32(7), v)
	}
}

func TestWriteRejectsNonContiguousAndWrongLength(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	view, err := Slice(a, 0, 0, 4, 2)
	require.NoError(t, err)
	require.False(t, view.IsContiguous())

	err = Write(view, []int32{1, 2})
	require.Error(t, err)
	require.True(t, IsShape(err))

	err = Write(a, []int32{1, 2, 3})
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestZeroExtentArraysAreContiguousAndEmpty(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float64, []int{0, 3})
	require.NoError(t, err)
	require.Equal(t, 0, a.Size())
	require.True(t, a.IsContiguous())
}

func TestCreateRejectsNegativeExtentAndBadRank(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	_, err := Create(ctx, Int8, []int{-1})
	require.Error(t, err)
	require.True(t, IsShape(err))

	_, err = Create(ctx, Int8, nil)
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestContextFreeDetachesArrays(t *testing.T) {
	ctx := NewContext()
	a, err := Zeros(ctx, Int8, []int{3})
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Len())
	ctx.Free()
	require.Equal(t, 0, ctx.Len())
	// a's buffer is still usable; Free only stops tracking it for bulk release.
	require.Equal(t, 3, a.Size())
}
