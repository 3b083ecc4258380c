package tween

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// Group fans one shared progress value out to many actions so that several
// sub-animations start and finish together. A group is sealed by its first
// Arm or by being added to a program; registration is rejected after that.
type Group struct {
	info     *model.StepInfo
	progress *Progress
	actions  []Action
	sealed   bool
}

// NewGroup creates an empty group driven by progress.
func NewGroup(name string, progress *Progress) (*Group, error) {
	if progress == nil {
		return nil, errors.Wrapf(ErrNilProgress, "group %s", name)
	}

	return &Group{
		info:     &model.StepInfo{Kind: model.GroupStepKind, Name: name},
		progress: progress,
	}, nil
}

// Add registers a raw action. Actions run in registration order on every
// tick, all with the same progress value.
func (g *Group) Add(action Action) error {
	if g.sealed {
		return errors.Wrapf(ErrSealed, "group %s", g.info.Name)
	}
	if action == nil {
		return errors.Wrapf(ErrNilAction, "group %s", g.info.Name)
	}

	g.actions = append(g.actions, action)
	g.info.Actions = len(g.actions)

	return nil
}

// AddValue registers an interpolated value: apply receives ease(t) mapped
// onto [from, to]. A nil easing defaults to Linear.
func (g *Group) AddValue(from, to float64, easing Ease, apply func(v float64)) error {
	if apply == nil {
		return errors.Wrapf(ErrNilAction, "group %s", g.info.Name)
	}
	if easing == nil {
		easing = Linear
	}

	lerp := Lerp(from, to)

	return g.Add(func(t float64) {
		apply(lerp(easing(t)))
	})
}

// Seal freezes the action list.
func (g *Group) Seal() {
	g.sealed = true
}

func (g *Group) Info() *model.StepInfo {
	return g.info
}

func (g *Group) Arm(now time.Time) error {
	g.sealed = true
	g.progress.Arm(now)

	return nil
}

func (g *Group) Reverse() {
	g.progress.Reverse()
}

func (g *Group) Tick(now time.Time) (bool, error) {
	t, finished, err := g.progress.Advance(now)
	if err != nil {
		return false, errors.Wrapf(err, "group %s", g.info.Name)
	}

	for _, action := range g.actions {
		action(t)
	}

	return finished, nil
}

var _ Step = (*Group)(nil)
