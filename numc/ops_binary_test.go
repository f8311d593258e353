package numc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddIdentityAndMulIdentity(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, -2, 3, 4}))

	zeros, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	ones, err := Fill(ctx, Int32, []int{4}, 1)
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)

	require.NoError(t, Add(a, zeros, out))
	require.Equal(t, a.Data().([]int32)[:4], out.Data().([]int32)[:4])

	require.NoError(t, Mul(a, ones, out))
	require.Equal(t, a.Data().([]int32)[:4], out.Data().([]int32)[:4])

	require.NoError(t, Sub(a, a, out))
	require.Equal(t, []int32{0, 0, 0, 0}, out.Data().([]int32)[:4])
}

func TestBroadcastAddSeedScenario(t *testing.T) {
	// Seed scenario 3: FLOAT32 a shape (3,1) [1,2,3], b shape (1,4)
	// [10,20,30,40], add(a,b,out) -> shape (3,4).
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Float32, []int{3, 1})
	require.NoError(t, err)
	require.NoError(t, Write(a, []float32{1, 2, 3}))
	b, err := Zeros(ctx, Float32, []int{1, 4})
	require.NoError(t, err)
	require.NoError(t, Write(b, []float32{10, 20, 30, 40}))
	out, err := Zeros(ctx, Float32, []int{3, 4})
	require.NoError(t, err)

	require.NoError(t, Add(a, b, out))
	want := []float32{
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
	}
	require.Equal(t, want, out.Data().([]float32)[:12])
}

func TestAddInplaceRejectsGrowingBroadcast(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3, 1})
	require.NoError(t, err)
	b, err := Zeros(ctx, Int32, []int{1, 4})
	require.NoError(t, err)

	err = a.AddInplace(b)
	require.Error(t, err)
	require.True(t, IsShape(err))
}

func TestDivFollowsLanguageSemantics(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{7, -7, 7}))
	b, err := Fill(ctx, Int32, []int{3}, 2)
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)

	require.NoError(t, Div(a, b, out))
	require.Equal(t, []int32{3, -3, 3}, out.Data().([]int32)[:3]) // truncating toward zero
}

func TestMaximumMinimum(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 5, -3, 8}))
	b, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(b, []int32{4, 2, -1, 8}))
	out, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)

	require.NoError(t, Maximum(a, b, out))
	require.Equal(t, []int32{4, 5, -1, 8}, out.Data().([]int32)[:4])

	require.NoError(t, Minimum(a, b, out))
	require.Equal(t, []int32{1, 2, -3, 8}, out.Data().([]int32)[:4])
}

func TestPowIntegerEdges(t *testing.T) {
	// Seed scenario 5: INT32 a=[2,10,3], b=[-1,-2,-3] -> [0,0,0].
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{2, 10, 3}))
	b, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)
	require.NoError(t, Write(b, []int32{-1, -2, -3}))
	out, err := Zeros(ctx, Int32, []int{3})
	require.NoError(t, err)

	require.NoError(t, Pow(a, b, out))
	require.Equal(t, []int32{0, 0, 0}, out.Data().([]int32)[:3])

	// x^0 == 1 for any x (including 0); x^1 == x.
	require.NoError(t, Write(a, []int32{0, 7, -4}))
	require.NoError(t, Write(b, []int32{0, 1, 0}))
	require.NoError(t, Pow(a, b, out))
	require.Equal(t, []int32{1, 7, 1}, out.Data().([]int32)[:3])
}

func TestPowNegativeExponentUnitMagnitude(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(a, []int32{1, 1, -1, -1}))
	b, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)
	require.NoError(t, Write(b, []int32{-3, -4, -3, -4}))
	out, err := Zeros(ctx, Int32, []int{4})
	require.NoError(t, err)

	require.NoError(t, Pow(a, b, out))
	require.Equal(t, []int32{1, 1, -1, 1}, out.Data().([]int32)[:4])
}

func TestBinaryOpsRejectKindMismatch(t *testing.T) {
	ctx := NewContext()
	defer ctx.Free()

	a, err := Zeros(ctx, Int32, []int{2})
	require.NoError(t, err)
	b, err := Zeros(ctx, Int64, []int{2})
	require.NoError(t, err)
	out, err := Zeros(ctx, Int32, []int{2})
	require.NoError(t, err)

	err = Add(a, b, out)
	require.Error(t, err)
	require.True(t, IsType(err))
}
