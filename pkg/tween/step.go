package tween

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// Action consumes one normalised progress value per tick. Adapters close over
// whatever host object they mutate; the core only ever sees the float.
type Action func(t float64)

// Step is one schedulable unit of a Program. A step is single-use per Arm;
// re-running it requires arming it again.
type Step interface {
	// Info describes the step to program options.
	Info() *model.StepInfo

	// Arm begins a run at now. Arm never invokes user actions.
	Arm(now time.Time) error

	// Tick advances the step and reports whether it finished.
	Tick(now time.Time) (bool, error)

	// Reverse flips the playback direction on timed steps and is a no-op
	// everywhere else.
	Reverse()
}

// Timed drives a list of actions from one progress source.
type Timed struct {
	info     *model.StepInfo
	progress *Progress
	actions  []Action
}

// NewTimed creates a step that fans the progress of one source out to every
// action, in registration order.
func NewTimed(name string, progress *Progress, actions ...Action) (*Timed, error) {
	if progress == nil {
		return nil, errors.Wrapf(ErrNilProgress, "step %s", name)
	}
	for _, action := range actions {
		if action == nil {
			return nil, errors.Wrapf(ErrNilAction, "step %s", name)
		}
	}

	return &Timed{
		info:     &model.StepInfo{Kind: model.TimedStepKind, Name: name, Actions: len(actions)},
		progress: progress,
		actions:  actions,
	}, nil
}

func (s *Timed) Info() *model.StepInfo {
	return s.info
}

func (s *Timed) Arm(now time.Time) error {
	s.progress.Arm(now)

	return nil
}

func (s *Timed) Reverse() {
	s.progress.Reverse()
}

func (s *Timed) Tick(now time.Time) (bool, error) {
	t, finished, err := s.progress.Advance(now)
	if err != nil {
		return false, errors.Wrapf(err, "step %s", s.info.Name)
	}

	for _, action := range s.actions {
		action(t)
	}

	return finished, nil
}

// RunStep drives a single step to completion in push mode, arming it on the
// first tick. It returns when the step finishes, the tick channel closes, or
// ctx is cancelled.
func RunStep(ctx context.Context, step Step, ticks <-chan time.Time) error {
	if step == nil {
		return ErrNilStep
	}

	armed := false

	for {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "step %s", step.Info().Name)
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if !armed {
				err := step.Arm(now)
				if err != nil {
					return err
				}
				armed = true
			}

			finished, err := step.Tick(now)
			if err != nil {
				return err
			}
			if finished {
				return nil
			}
		}
	}
}

var _ Step = (*Timed)(nil)
