package tween_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-tween/pkg/tween"
)

func TestNewTimedNilProgress(t *testing.T) {
	t.Parallel()

	_, err := tween.NewTimed("move", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNilProgress)
}

func TestNewTimedNilAction(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	_, err = tween.NewTimed("move", progress, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNilAction)
}

func TestTimedTick(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	first := &recorder{}
	second := &recorder{}
	step, err := tween.NewTimed("move", progress, first.record, second.record)
	require.NoError(t, err)

	require.NoError(t, step.Arm(baseTime))

	finished, err := step.Tick(at(time.Second))
	require.NoError(t, err)
	assert.False(t, finished)

	finished, err = step.Tick(at(2 * time.Second))
	require.NoError(t, err)
	assert.True(t, finished)

	// Every action sees the same progress values, in registration order.
	assert.Equal(t, []float64{0.5, 1}, first.values)
	assert.Equal(t, first.values, second.values)
}

func TestTimedTickNotArmed(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	step, err := tween.NewTimed("move", progress)
	require.NoError(t, err)

	_, err = step.Tick(baseTime)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNotArmed)
}

func TestTimedReverse(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	rec := &recorder{}
	step, err := tween.NewTimed("move", progress, rec.record)
	require.NoError(t, err)

	step.Reverse()

	// Reverse clears the baseline; ticking without re-arming must fail
	// instead of computing from stale state.
	_, err = step.Tick(baseTime)
	assert.ErrorIs(t, err, tween.ErrNotArmed)

	require.NoError(t, step.Arm(baseTime))
	finished, err := step.Tick(at(500 * time.Millisecond))
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, []float64{0.75}, rec.values)
}

func TestNewDelayInvalid(t *testing.T) {
	t.Parallel()

	_, err := tween.NewDelay("pause", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNotPositiveDuration)
}

func TestDelayTick(t *testing.T) {
	t.Parallel()

	step, err := tween.NewDelay("pause", time.Second)
	require.NoError(t, err)

	_, err = step.Tick(baseTime)
	assert.ErrorIs(t, err, tween.ErrNotArmed)

	require.NoError(t, step.Arm(baseTime))

	finished, err := step.Tick(at(999 * time.Millisecond))
	require.NoError(t, err)
	assert.False(t, finished)

	finished, err = step.Tick(at(time.Second))
	require.NoError(t, err)
	assert.True(t, finished)
}

func TestNewWaitForNilPredicate(t *testing.T) {
	t.Parallel()

	_, err := tween.NewWaitFor("wait", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNilPredicate)
}

func TestWaitForTick(t *testing.T) {
	t.Parallel()

	ready := false
	step, err := tween.NewWaitFor("wait", func(now time.Time) bool {
		return ready
	})
	require.NoError(t, err)

	require.NoError(t, step.Arm(baseTime))

	finished, err := step.Tick(at(time.Second))
	require.NoError(t, err)
	assert.False(t, finished)

	ready = true
	finished, err = step.Tick(at(2 * time.Second))
	require.NoError(t, err)
	assert.True(t, finished)
}

func TestWaitForAlreadyTrue(t *testing.T) {
	t.Parallel()

	step, err := tween.NewWaitFor("wait", func(now time.Time) bool {
		return true
	})
	require.NoError(t, err)

	require.NoError(t, step.Arm(baseTime))

	// A predicate that already holds completes the step on its first tick.
	finished, err := step.Tick(baseTime)
	require.NoError(t, err)
	assert.True(t, finished)
}

func TestNewDoNilAction(t *testing.T) {
	t.Parallel()

	_, err := tween.NewDo("fire", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNilAction)
}

func TestDoFiresOncePerArm(t *testing.T) {
	t.Parallel()

	fired := 0
	step, err := tween.NewDo("fire", func() {
		fired++
	})
	require.NoError(t, err)

	// Arming never runs the action; only the first tick does.
	require.NoError(t, step.Arm(baseTime))
	assert.Equal(t, 0, fired)

	for i := 0; i < 3; i++ {
		finished, err := step.Tick(at(time.Duration(i) * time.Second))
		require.NoError(t, err)
		assert.True(t, finished)
	}
	assert.Equal(t, 1, fired)

	// Re-arming makes the step fire again on its next run.
	require.NoError(t, step.Arm(at(10*time.Second)))
	finished, err := step.Tick(at(10 * time.Second))
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, 2, fired)
}

func TestRunStep(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	rec := &recorder{}
	step, err := tween.NewTimed("move", progress, rec.record)
	require.NoError(t, err)

	ticks := ticksAt(t, tickSeries(t, baseTime, 250*time.Millisecond, 10)...)

	err = tween.RunStep(context.Background(), step, ticks)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, rec.values)
}

func TestRunStepNil(t *testing.T) {
	t.Parallel()

	err := tween.RunStep(context.Background(), nil, nil)
	assert.ErrorIs(t, err, tween.ErrNilStep)
}

func TestRunStepCancelled(t *testing.T) {
	t.Parallel()

	step, err := tween.NewDelay("pause", time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ticks := make(chan time.Time)
	defer close(ticks)

	err = tween.RunStep(ctx, step, ticks)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
