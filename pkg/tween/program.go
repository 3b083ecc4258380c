package tween

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-tween/pkg/tween/model"
)

// State of a program. Finished and Stopped are terminal: a program runs at
// most once, and a new run needs a new program.
type State int

const (
	Idle State = iota
	Running
	Finished
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	}

	return "unknown"
}

// Mode controls how many times the step sequence runs.
type Mode struct {
	loops   int
	forever bool
}

// Once runs the sequence a single time.
var Once = Mode{loops: 1}

// LoopForever repeats the sequence until the program is stopped.
var LoopForever = Mode{forever: true}

// LoopN repeats the sequence n times.
func LoopN(n int) Mode {
	return Mode{loops: n}
}

// Program runs an ordered sequence of steps. Steps execute strictly one at a
// time; no two steps tick inside the same call.
type Program struct {
	name string
	mode Mode
	opts []model.ProgramOption

	steps     []Step
	state     State
	idx       int
	remaining int
	startTime time.Time
	stepStart time.Time
	optsDone  bool
}

// New creates an empty program.
func New(name string, mode Mode, opts ...model.ProgramOption) (*Program, error) {
	if !mode.forever && mode.loops < 1 {
		return nil, errors.Wrapf(ErrInvalidLoopCount, "program %s: %d", name, mode.loops)
	}

	prog := &Program{
		name:  name,
		mode:  mode,
		opts:  opts,
		state: Idle,
	}

	info := &model.ProgramInfo{Name: name, Looping: mode.forever || mode.loops > 1}
	for _, opt := range opts {
		err := opt.New(info)
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply program option")
		}
	}

	return prog, nil
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// State returns the current lifecycle state.
func (p *Program) State() State {
	return p.state
}

// Len returns the number of steps.
func (p *Program) Len() int {
	return len(p.steps)
}

// Add appends a step. Steps cannot be added once the program has started.
// Adding a group seals it.
func (p *Program) Add(step Step) error {
	switch p.state {
	case Running:
		return errors.Wrapf(ErrAlreadyRunning, "program %s", p.name)
	case Finished, Stopped:
		return errors.Wrapf(ErrTerminated, "program %s", p.name)
	}
	if step == nil {
		return errors.Wrapf(ErrNilStep, "program %s", p.name)
	}

	if sealer, ok := step.(interface{ Seal() }); ok {
		sealer.Seal()
	}

	parent := model.StartStep
	if len(p.steps) > 0 {
		parent = p.steps[len(p.steps)-1].Info()
	}
	for _, opt := range p.opts {
		err := opt.PrepareStep(parent, step.Info())
		if err != nil {
			return errors.Wrap(err, "unable to run prepare step hook")
		}
	}

	p.steps = append(p.steps, step)

	return nil
}

// Start moves the program to Running and arms the first step. Starting a
// running program is rejected and leaves the first run unaffected; a
// terminal program can never start again.
func (p *Program) Start(now time.Time) error {
	switch p.state {
	case Running:
		return errors.Wrapf(ErrAlreadyRunning, "program %s", p.name)
	case Finished, Stopped:
		return errors.Wrapf(ErrTerminated, "program %s", p.name)
	}
	if len(p.steps) == 0 {
		return errors.Wrapf(ErrEmptyProgram, "program %s", p.name)
	}

	p.state = Running
	p.remaining = p.mode.loops
	p.startTime = now

	return p.armStep(0, now)
}

// Tick advances the current step once. It reports done once the program is
// terminal; ticking a terminal program is a harmless no-op.
func (p *Program) Tick(now time.Time) (bool, error) {
	switch p.state {
	case Idle:
		return false, errors.Wrapf(ErrNotStarted, "program %s", p.name)
	case Finished, Stopped:
		return true, nil
	}

	step := p.steps[p.idx]

	tickStart := time.Now()
	finished, err := step.Tick(now)
	if err != nil {
		return false, errors.Wrapf(err, "program %s", p.name)
	}

	for _, opt := range p.opts {
		err := opt.OnStepTick(step.Info(), time.Since(tickStart))
		if err != nil {
			return false, errors.Wrap(err, "unable to run step tick hook")
		}
	}

	if !finished {
		return false, nil
	}

	for _, opt := range p.opts {
		err := opt.AfterStep(step.Info(), now.Sub(p.stepStart))
		if err != nil {
			return false, errors.Wrap(err, "unable to run after step hook")
		}
	}

	return p.next(now)
}

// next moves to the following step, wrapping at the end of the sequence
// according to the loop mode.
func (p *Program) next(now time.Time) (bool, error) {
	if p.idx+1 < len(p.steps) {
		return false, p.armStep(p.idx+1, now)
	}

	if p.mode.forever {
		return false, p.armStep(0, now)
	}

	p.remaining--
	if p.remaining > 0 {
		return false, p.armStep(0, now)
	}

	p.state = Finished
	p.steps = nil

	return true, p.finishOpts(now.Sub(p.startTime))
}

func (p *Program) armStep(idx int, now time.Time) error {
	p.idx = idx
	p.stepStart = now

	step := p.steps[idx]
	err := step.Arm(now)
	if err != nil {
		return errors.Wrapf(err, "program %s", p.name)
	}

	for _, opt := range p.opts {
		err := opt.OnStepArm(step.Info())
		if err != nil {
			return errors.Wrap(err, "unable to run step arm hook")
		}
	}

	return nil
}

// Stop moves the program to Stopped, discarding the remaining steps. It is
// idempotent; a stopped program cannot be started again.
func (p *Program) Stop() error {
	if p.state == Finished || p.state == Stopped {
		return nil
	}

	p.state = Stopped
	p.steps = nil

	return p.finishOpts(0)
}

func (p *Program) finishOpts(total time.Duration) error {
	if p.optsDone {
		return nil
	}
	p.optsDone = true

	for _, opt := range p.opts {
		err := opt.Finish(total)
		if err != nil {
			return errors.Wrap(err, "unable to finish program option")
		}
	}

	return nil
}

// Run drives the program in push mode: it starts on the first tick and then
// advances once per tick until the program is terminal, the tick channel
// closes, or ctx is cancelled.
func (p *Program) Run(ctx context.Context, ticks <-chan time.Time) error {
	started := false

	for {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "program %s", p.name)
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if !started {
				err := p.Start(now)
				if err != nil {
					return err
				}
				started = true
			}

			done, err := p.Tick(now)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}
