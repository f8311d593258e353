package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarOps(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float64, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []float64{1, 2, 3}))
	out, err := Zeros(ctx, Float64, []int{3})
	require.NoError(t, err)

	require.NoError(t, AddScalar(a, out, 10))
	require.Equal(t, []float64{11, 12, 13}, out.Data().([]float64)[:3])

	require.NoError(t, SubScalar(a, out, 1))
	require.Equal(t, []float64{0, 1, 2}, out.Data().([]float64)[:3])

	require.NoError(t, MulScalar(a, out, 2))
	require.Equal(t, []float64{2, 4, 6}, out.Data().([]float64)[:3])

	require.NoError(t, DivScalar(a, out, 2))
	require.Equal(t, []float64{0.5, 1, 1.5}, out.Data().([]float64)[:3])
}

func TestScalarInplace(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3}))

	require.NoError(t, a.AddScalarInplace(5))
	require.Equal(t, []int32{6, 7, 8}, a.Data().([]int32)[:3])

	require.NoError(t, a.MulScalarInplace(2))
	require.Equal(t, []int32{12, 14, 16}, a.Data().([]int32)[:3])
}

func TestScalarOpOnStridedView(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{6})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{0, 1, 2, 3, 4, 5}))
	view, err := Slice(a, 0, 0, 6, 2)
	require.NoError(t, err)
	require.False(t, view.IsContiguous())

	out, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, AddScalar(view, out, 100))
	require.Equal(t, []int32{100, 102, 104}, out.Data().([]int32)[:3])
}
