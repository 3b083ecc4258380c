package tween

import "github.com/pkg/errors"

var (
	ErrNotArmed            = errors.New("progress must be armed")
	ErrNotPositiveDuration = errors.New("duration must be greater than 0")
	ErrNotPositiveSpeed    = errors.New("speed must be greater than 0")
	ErrNegativeDistance    = errors.New("travel distance must not be negative")
	ErrUnknownEasing       = errors.New("easing is not registered")
	ErrNilProgress         = errors.New("progress must be set")
	ErrNilAction           = errors.New("action must be set")
	ErrNilPredicate        = errors.New("predicate must be set")
	ErrNilLerp             = errors.New("lerp must be set")
	ErrNilStep             = errors.New("step must be set")
	ErrNilTicker           = errors.New("ticker must be set")
	ErrSealed              = errors.New("group is sealed")
	ErrEmptyProgram        = errors.New("program has no steps")
	ErrNotStarted          = errors.New("program is not running")
	ErrAlreadyRunning      = errors.New("program is already running")
	ErrTerminated          = errors.New("program is finished or stopped")
	ErrInvalidLoopCount    = errors.New("loop count must be greater than 0")
)
