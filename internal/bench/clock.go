package bench

import "time"

// Clock supplies timestamps for benchmark timing.
//
// The production implementation reads the monotonic wall clock;
// tests substitute a deterministic clock so elapsed durations are
// reproducible. Timing is reporting-only and never affects control
// flow.
type Clock interface {
	Now() time.Time
}

// WallClock reads time.Now, which carries a monotonic component on
// every supported platform.
type WallClock struct{}

// Now implements Clock.
func (WallClock) Now() time.Time {
	return time.Now()
}
