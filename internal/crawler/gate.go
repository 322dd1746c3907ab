package crawler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// Gate is the shared request-concurrency budget (C5). It wraps a weighted
// semaphore with one unit per permit, plus the early-release-on-timeout
// contract: a task that holds its permit longer than permitTimeout has the
// permit released out from under it, while the task itself keeps running
// to completion and its result is still delivered to the caller.
type Gate struct {
	sem *semaphore.Weighted
}

// NewGate creates a Gate with the given permit capacity.
func NewGate(permits int) *Gate {
	return &Gate{sem: semaphore.NewWeighted(int64(permits))}
}

// taskPanic carries a recovered panic value across the task goroutine so
// WithPermit can re-raise it in the caller's goroutine rather than
// swallowing it — a gate invariant violation is fatal per spec.
type taskPanic struct{ value any }

// WithPermit acquires one permit (may block arbitrarily long waiting for
// ctx or availability), then runs task concurrently with a timer of
// permitTimeout. Whichever of (timer, task) finishes first releases the
// permit; the task is never cancelled and its error is always returned to
// the caller, even if its permit was already released.
func (g *Gate) WithPermit(ctx context.Context, permitTimeout time.Duration, task func(context.Context) error) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquiring permit: %w", err)
	}

	var released bool
	release := func() {
		if !released {
			released = true
			g.sem.Release(1)
		}
	}

	done := make(chan error, 1)
	panicCh := make(chan taskPanic, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicCh <- taskPanic{value: r}
			}
		}()
		done <- task(ctx)
	}()

	timer := time.NewTimer(permitTimeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		// Task is still running past its permit budget: release the
		// permit now so other fetches can proceed, but keep waiting for
		// the task's own result — it is not cancelled.
		release()
		select {
		case err := <-done:
			return err
		case p := <-panicCh:
			panic(p.value)
		}
	case err := <-done:
		release()
		return err
	case p := <-panicCh:
		release()
		panic(p.value)
	}
}
