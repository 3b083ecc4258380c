package tween

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// Delay waits for a fixed duration and produces no value.
type Delay struct {
	info     *model.StepInfo
	duration time.Duration
	baseline time.Time
	armed    bool
}

// NewDelay creates a delay step.
func NewDelay(name string, d time.Duration) (*Delay, error) {
	if d <= 0 {
		return nil, errors.Wrapf(ErrNotPositiveDuration, "step %s: duration %s", name, d)
	}

	return &Delay{
		info:     &model.StepInfo{Kind: model.DelayStepKind, Name: name},
		duration: d,
	}, nil
}

func (s *Delay) Info() *model.StepInfo {
	return s.info
}

func (s *Delay) Arm(now time.Time) error {
	s.baseline = now
	s.armed = true

	return nil
}

// Reverse is a no-op: a delay has no direction.
func (s *Delay) Reverse() {}

func (s *Delay) Tick(now time.Time) (bool, error) {
	if !s.armed {
		return false, errors.Wrapf(ErrNotArmed, "step %s", s.info.Name)
	}

	return now.Sub(s.baseline) >= s.duration, nil
}

var _ Step = (*Delay)(nil)
