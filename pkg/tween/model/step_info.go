package model

// StepKind identifies the behaviour of a step inside a program.
type StepKind string

const (
	TimedStepKind   StepKind = "timed"
	GroupStepKind   StepKind = "group"
	DelayStepKind   StepKind = "delay"
	WaitStepKind    StepKind = "wait"
	OneShotStepKind StepKind = "oneshot"
)

// StepInfo describes one step to program options.
type StepInfo struct {
	Kind    StepKind
	Name    string
	Actions int
}

// ProgramInfo describes a program to its options.
type ProgramInfo struct {
	Name    string
	Looping bool
}

var (
	StartStep = &StepInfo{Name: "start"}
	EndStep   = &StepInfo{Name: "end"}
)
