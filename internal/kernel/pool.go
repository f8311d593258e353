package kernel

import "sync"

// Pool tunes an optional parallel inner loop: element-wise passes over
// buffers whose byte count reaches a tunable threshold partition the
// iteration space into independent chunks run by a static-scheduled pool of
// worker goroutines. Each chunk writes its own slice of the output, so there
// is no combine step; reductions do not use Pool.
//
// Pool is a small struct holding tuning state that the contiguous
// element-wise paths consult, built through a single constructor -- a
// single tunable home for worker count and threshold, generic by default
// until a caller asks for more.
type Pool struct {
	threshold int // minimum byte count before an elementwise pass is split
	workers   int // number of worker goroutines when splitting; 1 disables parallelism
}

// DefaultThreshold is large enough that small arrays (the common case in
// tests and typical call sites) never pay goroutine-dispatch overhead.
const DefaultThreshold = 1 << 20 // 1 MiB

// NewPool builds a Pool with the given worker count; workers <= 1 disables
// the parallel path entirely and every kernel runs its single-threaded
// loop, which is always correct and is the default.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{threshold: DefaultThreshold, workers: workers}
}

// WithThreshold overrides the byte-count threshold above which Split
// partitions work across workers.
func (p *Pool) WithThreshold(bytes int) *Pool {
	p.threshold = bytes
	return p
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// Split partitions [0, n) into p.Workers() static chunks and calls fn(lo,
// hi) for each concurrently when elemBytes*n is at least the threshold and
// more than one worker is configured; otherwise it calls fn(0, n) once,
// inline, on the calling goroutine. Split always blocks until every chunk
// has completed, so callers never observe partial results.
func (p *Pool) Split(n, elemBytes int, fn func(lo, hi int)) {
	if p == nil || p.workers <= 1 || n*elemBytes < p.threshold || n == 0 {
		fn(0, n)
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
