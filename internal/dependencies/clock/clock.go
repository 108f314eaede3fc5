package clock

import "time"

// Clock provides the current time behind an interface so session expiry can
// be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// New creates a RealClock.
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
