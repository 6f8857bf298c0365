// Package lazy provides compute-once cells for memoized derived values.
package lazy

import "sync"

// Cell holds a value computed at most once by a successful call.
// A failed computation is not cached; the next Get retries it.
// The zero Cell is ready to use.
type Cell[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
}

// Get returns the cached value, computing it with compute on first use.
func (c *Cell[T]) Get(compute func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.value, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = v
	c.done = true
	return v, nil
}

// Peek returns the cached value and whether one is present, without computing.
func (c *Cell[T]) Peek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.done
}
