package scroll

import "sync"

// Coalescer folds bursts of scroll positions into at most one recomputation
// per frame. Offer records the newest position; the first Offer of a burst
// reports that a flush should be scheduled. Flush hands back the latest
// position, so observing the flushed value yields the same final state as
// observing the last position directly.
type Coalescer struct {
	mu      sync.Mutex
	pending bool
	y       int
}

// Offer records a position and reports whether a flush needs scheduling.
func (c *Coalescer) Offer(y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.y = y
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

// Flush returns the most recent position offered since the last flush.
func (c *Coalescer) Flush() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pending {
		return 0, false
	}
	c.pending = false
	return c.y, true
}
