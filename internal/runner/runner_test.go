package runner

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var count int
	err := Run(ctx, 1000, func(frame uint64) error {
		count++
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() error = %v, want deadline exceeded", err)
	}
	if count == 0 {
		t.Error("tick never ran")
	}
}

func TestRunErrStop(t *testing.T) {
	var frames []uint64
	err := Run(context.Background(), 1000, func(frame uint64) error {
		frames = append(frames, frame)
		if frame == 2 {
			return ErrStop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if len(frames) != 3 || frames[0] != 0 || frames[2] != 2 {
		t.Errorf("frames = %v, want [0 1 2]", frames)
	}
}

func TestRunPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), 1000, func(uint64) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
}

func TestRunRejectsBadRate(t *testing.T) {
	if err := Run(context.Background(), 0, func(uint64) error { return nil }); err == nil {
		t.Error("Run(fps=0) returned nil error")
	}
}

func TestFrames(t *testing.T) {
	var n int
	if err := Frames(7, func(uint64) error { n++; return nil }); err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("ran %d frames, want 7", n)
	}
}
