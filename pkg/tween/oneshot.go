package tween

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// Do invokes a function exactly once per arm, on the first tick after arming.
// Arming never fires the function, so program sequencing order is always the
// tick order, regardless of the step kind.
type Do struct {
	info  *model.StepInfo
	fn    func()
	armed bool
	fired bool
}

// NewDo creates a one-shot step.
func NewDo(name string, fn func()) (*Do, error) {
	if fn == nil {
		return nil, errors.Wrapf(ErrNilAction, "step %s", name)
	}

	return &Do{
		info: &model.StepInfo{Kind: model.OneShotStepKind, Name: name},
		fn:   fn,
	}, nil
}

func (s *Do) Info() *model.StepInfo {
	return s.info
}

func (s *Do) Arm(now time.Time) error {
	s.armed = true
	s.fired = false

	return nil
}

// Reverse is a no-op: a one-shot has no direction.
func (s *Do) Reverse() {}

func (s *Do) Tick(now time.Time) (bool, error) {
	if !s.armed {
		return false, errors.Wrapf(ErrNotArmed, "step %s", s.info.Name)
	}

	if !s.fired {
		s.fn()
		s.fired = true
	}

	return true, nil
}

var _ Step = (*Do)(nil)
