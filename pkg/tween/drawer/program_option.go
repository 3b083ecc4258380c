package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/measure"
	"github.com/askiada/go-tween/pkg/tween/model"
)

type programDrawer struct {
	Drawer
	m       measure.Measure
	program *model.ProgramInfo
	first   string
	last    string
}

func (pd *programDrawer) New(program *model.ProgramInfo) error {
	pd.program = program

	err := pd.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *programDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}

	if pd.first == "" {
		pd.first = step.Name
	}
	pd.last = step.Name

	return nil
}

func (pd *programDrawer) OnStepArm(step *model.StepInfo) error {
	return nil
}

func (pd *programDrawer) OnStepTick(step *model.StepInfo, tickDuration time.Duration) error {
	return nil
}

func (pd *programDrawer) AfterStep(step *model.StepInfo, stepDuration time.Duration) error {
	return nil
}

func (pd *programDrawer) Finish(totalDuration time.Duration) error {
	if pd.last != "" {
		err := pd.AddLink(pd.last, model.EndStep.Name)
		if err != nil {
			return errors.Wrap(err, "unable to link last step to end")
		}

		if pd.program != nil && pd.program.Looping {
			err := pd.AddLink(pd.last, pd.first)
			if err != nil {
				return errors.Wrap(err, "unable to add loop edge")
			}
		}
	}

	if totalDuration > 0 {
		err := pd.SetLabel(model.EndStep.Name, totalDuration.String())
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
	}

	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw program")
	}

	return nil
}

// ProgramDrawer renders the program's step chain when the program reaches a
// terminal state. A nil measure skips the duration decoration.
func ProgramDrawer(drawer Drawer, measure measure.Measure) model.ProgramOption {
	return &programDrawer{Drawer: drawer, m: measure}
}

var _ model.ProgramOption = (*programDrawer)(nil)
