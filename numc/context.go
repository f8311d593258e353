package numc

import (
	"sync"

	"github.com/google/uuid"

	"github.com/csotherden/numc/internal/kernel"
)

// Context is a process-visible arena that tracks every Array it creates and
// releases them together. It is required by the creation API; no per-Array
// finalizer tracking happens for arena-owned Arrays.
type Context struct {
	id   uuid.UUID
	mu   sync.Mutex
	live map[*Array]struct{}
	pool *kernel.Pool
}

// Option configures a Context at construction time using the usual
// functional-option constructor shape.
type Option func(*Context)

// WithWorkers configures the worker-goroutine count for the optional
// parallel inner loop used by contiguous element-wise ops. workers <= 1
// disables parallelism.
func WithWorkers(workers int) Option {
	return func(c *Context) { c.pool = kernel.NewPool(workers) }
}

// NewContext allocates a fresh arena.
func NewContext(opts ...Option) *Context {
	c := &Context{id: uuid.New(), live: make(map[*Array]struct{}), pool: kernel.NewPool(1)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the arena's identity, useful for diagnostics when several
// contexts are alive in one process.
func (c *Context) ID() uuid.UUID { return c.id }

func (c *Context) track(a *Array) {
	c.mu.Lock()
	c.live[a] = struct{}{}
	c.mu.Unlock()
}

// Free releases every Array this context tracks. Arrays not reachable from
// anywhere else become eligible for garbage collection; this does not zero
// or poison their buffers.
func (c *Context) Free() {
	c.mu.Lock()
	for a := range c.live {
		a.ctx = nil
	}
	c.live = make(map[*Array]struct{})
	c.mu.Unlock()
}

// Len reports how many arrays this context currently tracks.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}
