package tween

import (
	"time"

	"github.com/pkg/errors"
)

// Animation is a single typed, pull-driven value animation over one progress
// source.
type Animation[T any] struct {
	progress *Progress
	lerp     func(t float64) T
	current  T
}

// NewAnimation wraps a progress source and an interpolator.
func NewAnimation[T any](progress *Progress, lerp func(t float64) T) (*Animation[T], error) {
	if progress == nil {
		return nil, ErrNilProgress
	}
	if lerp == nil {
		return nil, ErrNilLerp
	}

	return &Animation[T]{progress: progress, lerp: lerp}, nil
}

// Arm baselines the underlying progress.
func (a *Animation[T]) Arm(now time.Time) {
	a.progress.Arm(now)
}

// Advance recomputes the current value and reports whether the animation
// finished.
func (a *Animation[T]) Advance(now time.Time) (bool, error) {
	t, finished, err := a.progress.Advance(now)
	if err != nil {
		return false, errors.Wrap(err, "unable to advance animation")
	}

	a.current = a.lerp(t)

	return finished, nil
}

// Current returns the value computed by the last Advance.
func (a *Animation[T]) Current() T {
	return a.current
}

// Value advances and returns the freshly computed value, so the caller never
// observes a value one frame behind the finished flag. active is the negation
// of finished.
func (a *Animation[T]) Value(now time.Time) (T, bool, error) {
	finished, err := a.Advance(now)
	if err != nil {
		var zero T

		return zero, false, err
	}

	return a.current, !finished, nil
}

// Reverse flips the playback direction; Arm again before resuming, or the
// next Advance returns ErrNotArmed.
func (a *Animation[T]) Reverse() {
	a.progress.Reverse()
}
