// Package testutil provides deterministic stand-ins for the module's
// time-facing seams.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a Clock whose Now returns a preset instant.
//
// Timestamps and snapshot exports embed the current time; tests swap in
// a FixedClock so output (including golden files) stays byte-stable.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the pinned instant forward by d. Useful for tests that
// need distinct but still deterministic timestamps.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
