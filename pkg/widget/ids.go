package widget

import (
	"strconv"
	"sync/atomic"
)

// IDAllocator hands out element identifiers for widgets that were not given one.
type IDAllocator interface {
	// Next returns prefix followed by a value unique for this allocator.
	Next(prefix string) string
	// Reset starts the allocator over. Meant for tests and request-scoped rendering.
	Reset()
}

// Counter is a monotonic IDAllocator producing prefix0, prefix1, ...
// It is safe for concurrent use.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at 0.
func NewCounter() *Counter {
	return &Counter{}
}

// NewCounterFrom returns a counter whose first id uses start.
func NewCounterFrom(start int64) *Counter {
	c := &Counter{}
	c.n.Store(start)

	return c
}

// Next implements IDAllocator.
func (c *Counter) Next(prefix string) string {
	return prefix + strconv.FormatInt(c.n.Add(1)-1, 10)
}

// Reset implements IDAllocator.
func (c *Counter) Reset() {
	c.n.Store(0)
}

// Value returns the number the next id will use.
func (c *Counter) Value() int64 {
	return c.n.Load()
}

// shared backs widgets that were not given an allocator.
var shared = NewCounter() //nolint:gochecknoglobals

// SharedIDs returns the process-wide counter used by widgets without an explicit allocator.
func SharedIDs() *Counter {
	return shared
}

// ResolveID returns explicit when it is not empty, without touching ids.
// Otherwise it allocates prefix + next value from ids.
func ResolveID(ids IDAllocator, explicit, prefix string) string {
	if explicit != "" {
		return explicit
	}

	if ids == nil {
		ids = shared
	}

	return ids.Next(prefix)
}
