package clock

import "time"

// Clock abstracts the wall clock. Everything that decides which puzzle
// day it is goes through this so tests can pin the day boundary.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// New returns a SystemClock.
func New() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
