package tween_test

import (
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-tween/pkg/tween"
)

func TestNewAnimationInvalid(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	_, err = tween.NewAnimation[float64](nil, tween.Lerp(0, 1))
	assert.ErrorIs(t, err, tween.ErrNilProgress)

	_, err = tween.NewAnimation[float64](progress, nil)
	assert.ErrorIs(t, err, tween.ErrNilLerp)
}

func TestAnimationScalarMidpoint(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	anim, err := tween.NewAnimation(progress, tween.Lerp(10, 20))
	require.NoError(t, err)

	anim.Arm(baseTime)

	finished, err := anim.Advance(at(time.Second))
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 15.0, anim.Current())
}

func TestAnimationPointMidpoint(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	from := tween.Point{X: 0, Y: -2, Z: 4}
	to := tween.Point{X: 10, Y: 2, Z: 8}
	anim, err := tween.NewAnimation(progress, tween.LerpPoint(from, to))
	require.NoError(t, err)

	anim.Arm(baseTime)

	_, err = anim.Advance(at(time.Second))
	require.NoError(t, err)
	assert.Equal(t, tween.Point{X: 5, Y: 0, Z: 6}, anim.Current())
}

func TestAnimationColorMidpoint(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	from := colorful.Color{R: 0, G: 0.5, B: 1}
	to := colorful.Color{R: 1, G: 0.5, B: 0}
	anim, err := tween.NewAnimation(progress, tween.LerpColor(from, to))
	require.NoError(t, err)

	anim.Arm(baseTime)

	_, err = anim.Advance(at(time.Second))
	require.NoError(t, err)

	got := anim.Current()
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 0.5, got.G, 1e-9)
	assert.InDelta(t, 0.5, got.B, 1e-9)
}

func TestAnimationValueNeverStale(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	anim, err := tween.NewAnimation(progress, tween.Lerp(0, 100))
	require.NoError(t, err)

	anim.Arm(baseTime)

	value, active, err := anim.Value(at(500 * time.Millisecond))
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, 50.0, value)

	// The terminal frame reports the end value together with the inactive
	// flag, never a value one frame behind.
	value, active, err = anim.Value(at(time.Second))
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, 100.0, value)
}

func TestAnimationAdvanceNotArmed(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(time.Second)
	require.NoError(t, err)

	anim, err := tween.NewAnimation(progress, tween.Lerp(0, 1))
	require.NoError(t, err)

	_, err = anim.Advance(baseTime)
	require.Error(t, err)
	assert.ErrorIs(t, err, tween.ErrNotArmed)
}

func TestAnimationReverse(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewDurationProgress(2 * time.Second)
	require.NoError(t, err)

	anim, err := tween.NewAnimation(progress, tween.Lerp(0, 100))
	require.NoError(t, err)

	anim.Arm(baseTime)
	_, err = anim.Advance(at(time.Second))
	require.NoError(t, err)

	anim.Reverse()

	// Reversing invalidates the baseline; the caller must re-arm.
	_, err = anim.Advance(at(time.Second))
	assert.ErrorIs(t, err, tween.ErrNotArmed)

	anim.Arm(at(time.Second))
	_, err = anim.Advance(at(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 75.0, anim.Current())
}

func TestAnimationZeroDistanceNoNaN(t *testing.T) {
	t.Parallel()

	progress, err := tween.NewSpeedProgress(3, 0)
	require.NoError(t, err)

	anim, err := tween.NewAnimation(progress, tween.Lerp(0, 100))
	require.NoError(t, err)

	anim.Arm(baseTime)

	value, active, err := anim.Value(baseTime)
	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, math.IsNaN(value))
	assert.Equal(t, 100.0, value)
}
