// Package testutil provides deterministic test doubles shared across
// package tests.
package testutil

import "time"

// FixedClock implements the persistence Clock interface with a
// controllable time, so backup filenames come out the same on every
// run.
type FixedClock struct {
	t time.Time
}

// NewFixedClock creates a clock pinned to t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.t
}

// Advance moves the pinned time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
