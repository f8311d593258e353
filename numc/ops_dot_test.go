package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotInteger(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3}))
	b, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(b, []int32{4, 5, 6}))
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	require.NoError(t, Dot(a, b, out))
	require.Equal(t, int32(32), out.Data().([]int32)[0]) // 1*4+2*5+3*6
}

func TestDotFloat(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float64, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(a, []float64{1, 2, 3, 4}))
	b, err := Zeros(ctx, Float64, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(b, []float64{1, 1, 1, 1}))
	out, err := Zeros(ctx, Float64, []int{1})
	require.NoError(t, err)

	require.NoError(t, Dot(a, b, out))
	require.Equal(t, 10.0, out.Data().([]float64)[0])
}

func TestDotRejectsRankMismatch(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 2})
	require.NoError(t, err)
	b, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	err = Dot(a, b, out)
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestDotRejectsLengthMismatch(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	b, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	err = Dot(a, b, out)
	require.Error(t, err)
	require.True(t, IsShape(err))
}
