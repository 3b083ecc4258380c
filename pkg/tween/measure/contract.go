package measure

import "time"

type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

type Metric interface {
	AddArm()
	AddTick(elapsed time.Duration)
	AddStepDuration(elapsed time.Duration)
	Arms() int64
	Ticks() int64
	AVGTickDuration() time.Duration
	AVGStepDuration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
