package nav

import (
	"sync"
	"time"
)

// Coalescer collapses a burst of Trigger calls into a single trailing
// invocation of its handler, run once the window has passed with no further
// triggers. Every Trigger restarts the window.
//
// The handler runs on a timer goroutine. Callers that own single-threaded
// state should have it post a message back to their own loop instead of
// touching that state directly.
type Coalescer struct {
	window  time.Duration
	handler func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewCoalescer(window time.Duration, handler func()) *Coalescer {
	return &Coalescer{window: window, handler: handler}
}

// Trigger schedules the handler, superseding any pending invocation.
func (c *Coalescer) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() {
		c.fire(gen)
	})
}

func (c *Coalescer) fire(gen uint64) {
	c.mu.Lock()
	// A timer that lost the race against Stop or a newer Trigger is stale.
	if gen != c.gen || c.timer == nil {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	handler := c.handler
	c.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// Flush runs a pending handler immediately. It reports false when nothing
// was pending.
func (c *Coalescer) Flush() bool {
	c.mu.Lock()
	if c.timer == nil {
		c.mu.Unlock()
		return false
	}
	c.timer.Stop()
	c.timer = nil
	c.gen++
	handler := c.handler
	c.mu.Unlock()

	if handler != nil {
		handler()
	}
	return true
}

// Stop drops any pending invocation.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// Pending reports whether an invocation is scheduled.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}
