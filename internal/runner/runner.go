// Package runner drives a tick function at a fixed rate for front-ends that
// have no host frame scheduler of their own.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStop can be returned by a tick function to end the loop without error.
var ErrStop = errors.New("runner: stop")

// TickFunc runs one frame. Returning a non-nil error ends the loop.
type TickFunc func(frame uint64) error

// Run calls tick once immediately and then once per period until ctx is
// cancelled or tick returns an error. Ticks never overlap; a slow tick delays
// the next one instead of queuing extra frames.
func Run(ctx context.Context, fps int, tick TickFunc) error {
	if fps <= 0 {
		return fmt.Errorf("runner: fps must be positive, got %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var frame uint64
	for {
		if err := tick(frame); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		frame++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Frames runs exactly n ticks back to back, for headless rendering.
func Frames(n int, tick TickFunc) error {
	for i := 0; i < n; i++ {
		if err := tick(uint64(i)); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return nil
}
