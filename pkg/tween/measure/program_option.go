package measure

import (
	"time"

	"github.com/askiada/go-tween/pkg/tween/model"
)

type programMeasure struct {
	Measure
}

func (pm *programMeasure) New(program *model.ProgramInfo) error {
	pm.AddMetric(model.StartStep.Name)
	pm.AddMetric(model.EndStep.Name)

	return nil
}

func (pm *programMeasure) PrepareStep(parentStep, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *programMeasure) OnStepArm(step *model.StepInfo) error {
	pm.GetMetric(step.Name).AddArm()

	return nil
}

func (pm *programMeasure) OnStepTick(step *model.StepInfo, tickDuration time.Duration) error {
	pm.GetMetric(step.Name).AddTick(tickDuration)

	return nil
}

func (pm *programMeasure) AfterStep(step *model.StepInfo, stepDuration time.Duration) error {
	pm.GetMetric(step.Name).AddStepDuration(stepDuration)

	return nil
}

func (pm *programMeasure) Finish(totalDuration time.Duration) error {
	pm.GetMetric(model.EndStep.Name).SetTotalDuration(totalDuration)

	return nil
}

// ProgramMeasure records per-step arm counts, tick durations and step wall
// times into msr.
func ProgramMeasure(msr Measure) model.ProgramOption {
	return &programMeasure{msr}
}

var _ model.ProgramOption = (*programMeasure)(nil)
