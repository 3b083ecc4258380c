package measure

import (
	"sync"
	"time"
)

// DefaultMetric accumulates arm/tick counts and durations for one step. The
// mutex matters when one Measure observes programs running on different
// goroutines.
type DefaultMetric struct {
	mu          *sync.Mutex
	EndDuration time.Duration
	tickElapsed time.Duration
	stepElapsed time.Duration
	ticks       int64
	arms        int64
	stepRuns    int64
}

func (mt *DefaultMetric) AddArm() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.arms++
}

func (mt *DefaultMetric) AddTick(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.ticks++
	mt.tickElapsed += elapsed
}

func (mt *DefaultMetric) AddStepDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stepRuns++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) Arms() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.arms
}

func (mt *DefaultMetric) Ticks() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.ticks
}

func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AVGTickDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.ticks == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.tickElapsed) / float64(mt.ticks)))
}

func (mt *DefaultMetric) AVGStepDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.stepRuns == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.stepRuns)))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Hour:
		d = d.Round(time.Hour)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
