package tween

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type timingPolicy int

const (
	durationPolicy timingPolicy = iota
	speedPolicy
)

// Progress computes normalised progress from elapsed time under a fixed
// timing policy. For a fixed direction the progress value is monotonic in
// the time passed to Advance.
type Progress struct {
	policy   timingPolicy
	duration time.Duration
	speed    float64
	distance float64

	baseline time.Time
	armed    bool
	reversed bool
}

// NewDurationProgress times progress over a fixed wall-clock length.
func NewDurationProgress(d time.Duration) (*Progress, error) {
	if d <= 0 {
		return nil, errors.Wrapf(ErrNotPositiveDuration, "duration %s", d)
	}

	return &Progress{policy: durationPolicy, duration: d}, nil
}

// NewSpeedProgress times progress from a rate (units per second) and a travel
// distance. A zero distance is a valid degenerate animation that finishes on
// its first advance.
func NewSpeedProgress(speed, distance float64) (*Progress, error) {
	if speed <= 0 {
		return nil, errors.Wrapf(ErrNotPositiveSpeed, "speed %v", speed)
	}
	if distance < 0 {
		return nil, errors.Wrapf(ErrNegativeDistance, "distance %v", distance)
	}

	return &Progress{policy: speedPolicy, speed: speed, distance: distance}, nil
}

// Arm records the baseline time. Advance before Arm returns ErrNotArmed.
func (p *Progress) Arm(now time.Time) {
	p.baseline = now
	p.armed = true
}

// Armed reports whether the progress has a baseline.
func (p *Progress) Armed() bool {
	return p.armed
}

// Reversed reports the playback direction.
func (p *Progress) Reversed() bool {
	return p.reversed
}

// Reverse flips the playback direction. It also clears the armed flag: the
// old baseline belongs to the previous direction, so the caller must Arm
// again before advancing.
func (p *Progress) Reverse() {
	p.reversed = !p.reversed
	p.armed = false
}

func (p *Progress) raw(now time.Time) float64 {
	elapsed := now.Sub(p.baseline)
	if p.policy == speedPolicy {
		if p.distance == 0 {
			return 1
		}

		return elapsed.Seconds() * p.speed / p.distance
	}

	return float64(elapsed) / float64(p.duration)
}

// Advance computes the clamped, direction-adjusted progress at now. It
// reports finished on the first call where raw progress reaches 1, the same
// call that observes t == 1.
func (p *Progress) Advance(now time.Time) (float64, bool, error) {
	if !p.armed {
		return 0, false, ErrNotArmed
	}

	raw := p.raw(now)
	t := clamp01(raw)
	if p.reversed {
		t = 1 - t
	}

	return t, raw >= 1, nil
}

// Samples yields one progress value per tick, arming on the first tick if
// needed. The returned channel closes after the terminal sample, when ticks
// closes, or when ctx is cancelled. A consumed Progress is not restartable;
// build a fresh one instead.
func (p *Progress) Samples(ctx context.Context, ticks <-chan time.Time) <-chan float64 {
	out := make(chan float64)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case now, ok := <-ticks:
				if !ok {
					return
				}
				if !p.armed {
					p.Arm(now)
				}
				t, finished, err := p.Advance(now)
				if err != nil {
					return
				}

				select {
				case <-ctx.Done():
					return
				case out <- t:
				}

				if finished {
					return
				}
			}
		}
	}()

	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
