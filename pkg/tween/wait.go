package tween

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// WaitFor blocks the program until a predicate holds. The predicate is
// evaluated on every tick, so a predicate that already holds completes the
// step on its first tick.
type WaitFor struct {
	info  *model.StepInfo
	pred  func(now time.Time) bool
	armed bool
}

// NewWaitFor creates a predicate-wait step.
func NewWaitFor(name string, pred func(now time.Time) bool) (*WaitFor, error) {
	if pred == nil {
		return nil, errors.Wrapf(ErrNilPredicate, "step %s", name)
	}

	return &WaitFor{
		info: &model.StepInfo{Kind: model.WaitStepKind, Name: name},
		pred: pred,
	}, nil
}

func (s *WaitFor) Info() *model.StepInfo {
	return s.info
}

// Arm needs no baseline; it only marks the step as runnable.
func (s *WaitFor) Arm(now time.Time) error {
	s.armed = true

	return nil
}

// Reverse is a no-op: a predicate wait has no direction.
func (s *WaitFor) Reverse() {}

func (s *WaitFor) Tick(now time.Time) (bool, error) {
	if !s.armed {
		return false, errors.Wrapf(ErrNotArmed, "step %s", s.info.Name)
	}

	return s.pred(now), nil
}

var _ Step = (*WaitFor)(nil)
