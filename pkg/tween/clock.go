package tween

import "time"

// Clock supplies the current time at the driver boundary. The core only ever
// receives explicit time values, so tests can advance a manual clock instead
// of sleeping.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ Clock = SystemClock{}
