package tween_test

import (
	"testing"
	"time"
)

var baseTime = time.Unix(1000, 0)

func at(d time.Duration) time.Time {
	return baseTime.Add(d)
}

func tickSeries(t *testing.T, start time.Time, interval time.Duration, count int) []time.Time {
	t.Helper()

	series := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		series = append(series, start.Add(time.Duration(i)*interval))
	}

	return series
}

func ticksAt(t *testing.T, times ...time.Time) <-chan time.Time {
	t.Helper()

	// Buffered so an early-stopping consumer never leaks the sender.
	out := make(chan time.Time, len(times))
	for _, now := range times {
		out <- now
	}
	close(out)

	return out
}

type recorder struct {
	values []float64
}

func (r *recorder) record(t float64) {
	r.values = append(r.values, t)
}
