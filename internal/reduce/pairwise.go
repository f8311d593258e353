package reduce

import "github.com/csotherden/numc/internal/kernel"

// pairwiseBlock matches NumPy's well-known pairwise-summation block size:
// below it, 8 independent accumulators are summed over 8-wide chunks (the
// SLP vectorizer packs this into wide adds on the float paths gorgonia's
// vecf32/vecf64 use); above it, the buffer is recursively halved.
// This bounds accumulated rounding error to O(log n . eps) instead of
// O(n . eps) for a naive single-accumulator loop.
const pairwiseBlock = 128

// PairwiseSum reduces a contiguous float slice with pairwise summation.
func PairwiseSum[T kernel.Float](a []T) T {
	n := len(a)
	if n == 0 {
		return 0
	}
	if n <= pairwiseBlock {
		return blockSum(a)
	}
	mid := n / 2
	return PairwiseSum(a[:mid]) + PairwiseSum(a[mid:])
}

// blockSum sums up to pairwiseBlock elements using 8 independent
// accumulators (filling one AVX2 ymm register for float32, two for
// float64) summed in a balanced tree, then mops up any tail.
func blockSum[T kernel.Float](a []T) T {
	var acc [8]T
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		acc[0] += a[i]
		acc[1] += a[i+1]
		acc[2] += a[i+2]
		acc[3] += a[i+3]
		acc[4] += a[i+4]
		acc[5] += a[i+5]
		acc[6] += a[i+6]
		acc[7] += a[i+7]
	}
	sum := (acc[0] + acc[1]) + (acc[2] + acc[3]) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
	for ; i < n; i++ {
		sum += a[i]
	}
	return sum
}
