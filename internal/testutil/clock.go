// Package testutil provides deterministic test doubles shared across
// package tests and the integration suite.
package testutil

import "sync"

// Clock is a thread-safe settable clock for tests. It satisfies types.Clock
// and replaces the wall-clock collaborator so expiry boundaries can be pinned
// to exact instants.
type Clock struct {
	mu  sync.Mutex
	now uint64
}

// NewClock creates a clock frozen at the given instant.
func NewClock(now uint64) *Clock {
	return &Clock{now: now}
}

// Now returns the current frozen instant.
func (c *Clock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to an absolute instant.
func (c *Clock) Set(now uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by the given number of seconds.
func (c *Clock) Advance(seconds uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += seconds
}
