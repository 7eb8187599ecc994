// Package clock provides time helpers for loop pacing.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for the duration, or returns the context error as
// soon as the context is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
