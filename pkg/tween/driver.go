package tween

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Ticks adapts a Clock into a push-mode tick channel firing every interval.
// The channel closes when ctx is cancelled.
func Ticks(ctx context.Context, clock Clock, interval time.Duration) <-chan time.Time {
	out := make(chan time.Time)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case <-ctx.Done():
					return
				case out <- clock.Now():
				}
			}
		}
	}()

	return out
}

// RunAll drives several programs to completion, each on its own goroutine
// with its own tick channel, so that all mutation of a program stays confined
// to a single goroutine. The first error cancels the remaining programs.
func RunAll(ctx context.Context, ticks func() <-chan time.Time, programs ...*Program) error {
	if ticks == nil {
		return ErrNilTicker
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	for _, prog := range programs {
		localProg := prog
		errGrp.Go(func() error {
			return localProg.Run(dCtx, ticks())
		})
	}

	return errGrp.Wait()
}
