// Package testutil provides deterministic substitutes for the
// benchmark driver's injected dependencies.
package testutil

import "time"

// SteppingClock is a fake bench.Clock that advances by a fixed step on
// every Now call.
//
// With a fixed step, every elapsed duration the driver computes is a
// pure function of how many times it read the clock, so reports become
// byte-stable for golden comparison.
//
// Thread-safety: not safe for concurrent use; the driver is
// single-threaded.
type SteppingClock struct {
	now  time.Time
	step time.Duration
}

// NewSteppingClock creates a clock starting at epoch, advancing by
// step per Now call.
func NewSteppingClock(epoch time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{now: epoch, step: step}
}

// Now returns the current fake time, then advances it by the step.
func (c *SteppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
