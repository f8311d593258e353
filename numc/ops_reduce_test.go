package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumAxis0SeedScenario(t *testing.T) {
	// Seed scenario 1: INT32 shape (2,3) [[1,2,3],[4,5,6]], axis=0,
	// keepdim=0 -> shape (3,) [5,7,9].
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))
	out, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)

	require.NoError(t, Sum(a, out, 0, false))
	require.Equal(t, []int32{5, 7, 9}, out.Data().([]int32)[:3])
}

func TestSumTransposedFullSeedScenario(t *testing.T) {
	// Seed scenario 2: FLOAT32 shape (2,3) [[1,2,3],[4,5,6]], transpose to
	// (3,2) (non-contiguous), full sum -> 21.0.
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []float32{1, 2, 3, 4, 5, 6}))
	require.NoError(t, a.Transpose([]int{1, 0}))
	require.False(t, a.IsContiguous())

	out, err := Zeros(ctx, Float32, []int{1})
	require.NoError(t, err)
	require.NoError(t, Sum(a, out, FullAxis, false))
	require.Equal(t, float32(21), out.Data().([]float32)[0])
}

func TestArgMaxAxis1SeedScenario(t *testing.T) {
	// Seed scenario 4: FLOAT32 shape (2,3) [[1,5,3],[4,2,6]], axis=1 ->
	// INT64 shape (2,) [1, 2].
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []float32{1, 5, 3, 4, 2, 6}))
	out, err := Zeros(ctx, Int64, []int{2})
	require.NoError(t, err)

	require.NoError(t, ArgMax(a, out, 1, false))
	require.Equal(t, []int64{1, 2}, out.Data().([]int64)[:2])
}

func TestMeanInt32TruncationSeedScenario(t *testing.T) {
	// Seed scenario 6: INT32 shape (2,3) [[1,2,3],[4,5,6]], axis=0 ->
	// INT32 shape (3,) [2,3,4].
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))
	out, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)

	require.NoError(t, Mean(a, out, 0, false))
	require.Equal(t, []int32{2, 3, 4}, out.Data().([]int32)[:3])
}

func TestSumAxisKeepdim(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))
	out, err := Zeros(ctx, Int32, []int{1, 3})
	require.NoError(t, err)

	require.NoError(t, Sum(a, out, 0, true))
	require.Equal(t, []int{1, 3}, out.Shape())
	require.Equal(t, []int32{5, 7, 9}, out.Data().([]int32)[:3])
}

func TestMaxGreaterEqualEveryElement(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{5})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{3, -1, 7, 2, 7}))
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	require.NoError(t, Max(a, out, FullAxis, false))
	max := out.Data().([]int32)[0]
	require.Equal(t, int32(7), max)
	for _, v := range a.Data().([]int32)[:5] {
		require.LessOrEqual(t, v, max)
	}
}

func TestArgMaxReturnsEarliestTiedIndex(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{5})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{3, 7, 7, 2, 7}))
	out, err := Zeros(ctx, Int64, []int{1})
	require.NoError(t, err)

	require.NoError(t, ArgMax(a, out, FullAxis, false))
	require.Equal(t, int64(1), out.Data().([]int64)[0])
}

func TestProdEmptyArrayIsOne(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{0})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	require.NoError(t, Prod(a, out, FullAxis, false))
	require.Equal(t, int32(1), out.Data().([]int32)[0])
}

func TestSumEmptyArrayIsZero(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{0})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{1})
	require.NoError(t, err)

	require.NoError(t, Sum(a, out, FullAxis, false))
	require.Equal(t, int32(0), out.Data().([]int32)[0])
}

func TestMeanEmptyArrayLeavesOutputUntouched(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float64, []int{0})
	require.NoError(t, err)
	out, err := Fill(ctx, Float64, []int{1}, 42)
	require.NoError(t, err)

	require.NoError(t, Mean(a, out, FullAxis, false))
	require.Equal(t, 42.0, out.Data().([]float64)[0])
}

func TestArgMaxFullOnEmptyArrayFailsShape(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{0})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int64, []int{1})
	require.NoError(t, err)

	err = ArgMax(a, out, FullAxis, false)
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestReduceAxisOutputKindMustMatch(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int64, []int{3})
	require.NoError(t, err)

	err = Sum(a, out, 0, false)
	require.Error(t, err)
	require.True(t, IsType(err))
}

func TestSumAxisMatchesFusedAndGenericPaths(t *testing.T) {
	// A transposed view of a transposed copy holds the same logical (2,3)
	// values, but its axis 1 has stride 2 elements, which breaks the fused
	// fast path's contiguity precondition; its axis-0 sum takes the generic
	// path and must match the fused result on the contiguous original.
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 2, 3, 4, 5, 6}))

	outFast, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Sum(a, outFast, 0, false))

	b, err := TransposeCopy(ctx, a, []int{1, 0})
	require.NoError(t, err)
	require.NoError(t, b.Transpose([]int{1, 0}))
	require.False(t, b.IsContiguous())
	outGeneric, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Sum(b, outGeneric, 0, false))

	require.Equal(t, outFast.Data().([]int32)[:3], outGeneric.Data().([]int32)[:3])
}
