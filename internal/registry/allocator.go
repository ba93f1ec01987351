package registry

import (
	"context"
	"sync/atomic"
)

// Allocator hands out record ids. Ids start at 1 and every call returns a
// value strictly greater than all previous ones.
type Allocator interface {
	Next(ctx context.Context) (int64, error)
}

// Releaser is implemented by allocators that can take back the id they handed
// out last, once nothing was stored under it.
type Releaser interface {
	Release(ctx context.Context, id int64)
}

// Counter is an in-memory Allocator. The zero value is ready to use.
type Counter struct {
	last atomic.Int64
}

// Next returns the next id. It never fails.
func (c *Counter) Next(context.Context) (int64, error) {
	return c.last.Add(1), nil
}

// Release returns id to the counter if it is still the last one handed out.
func (c *Counter) Release(_ context.Context, id int64) {
	c.last.CompareAndSwap(id, id-1)
}
