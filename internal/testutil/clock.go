package testutil

import (
	"sync"
	"time"
)

// FrozenClock is a thread-safe wall clock pinned to a fixed instant.
// Tests inject its Now method wherever a component stamps timestamps so
// written rows carry a known, comparable value.
type FrozenClock struct {
	mu sync.Mutex
	at time.Time
}

// NewFrozenClock creates a clock pinned to the given instant.
func NewFrozenClock(at time.Time) *FrozenClock {
	return &FrozenClock{at: at}
}

// Now returns the pinned instant.
func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

// Advance moves the pinned instant forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}
