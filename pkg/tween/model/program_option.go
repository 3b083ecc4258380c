package model

import "time"

// ProgramOption defines the interface for program observers.
type ProgramOption interface {
	// New initialises the program option before any step is added.
	New(program *ProgramInfo) error

	// PrepareStep runs when a step is appended to the program.
	PrepareStep(parentStep, step *StepInfo) error

	// OnStepArm runs every time a step is armed, once per loop iteration.
	OnStepArm(step *StepInfo) error

	// OnStepTick runs after every tick of the current step.
	OnStepTick(step *StepInfo, tickDuration time.Duration) error

	// AfterStep runs when a step reports finished.
	AfterStep(step *StepInfo, stepDuration time.Duration) error

	// Finish runs once, when the program reaches a terminal state. A stopped
	// program reports a zero total duration.
	Finish(totalDuration time.Duration) error
}
