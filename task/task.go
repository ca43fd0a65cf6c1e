// Package task runs asynchronous units of work and collects their results
// in input order.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/oneliners_go/shared/log"
)

// Task is an asynchronous operation that produces a value of type R.
type Task[R any] func(context.Context) (R, error)

type Result[R any] struct {
	Value R
	Err   error
}

func resultFrom[R any](value R, err error) Result[R] {
	return Result[R]{Value: value, Err: err}
}

var ErrPanicked = errors.New("task panicked")

// Error reports which task of a run failed. It unwraps to the task's own error.
type Error struct {
	Index int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("task %d: %v", e.Index, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Delay blocks for d or until ctx is done, whichever comes first.
func Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// After returns a task that resolves to value once d has elapsed.
func After[R any](d time.Duration, value R) Task[R] {
	return func(ctx context.Context) (R, error) {
		if err := Delay(ctx, d); err != nil {
			var zero R
			return zero, err
		}
		return value, nil
	}
}

// Fail returns a task that fails with err once d has elapsed.
func Fail[R any](d time.Duration, err error) Task[R] {
	return func(ctx context.Context) (R, error) {
		var zero R
		if derr := Delay(ctx, d); derr != nil {
			return zero, derr
		}
		return zero, err
	}
}

// invoke runs t and turns a panic into ErrPanicked.
func invoke[R any](ctx context.Context, runID string, index int, t Task[R]) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			log.Log(ctx, log.LogError, "panic in task", map[string]interface{}{
				"run_id": runID,
				"index":  index,
				"error":  r,
			})
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanicked, r)}
		}
	}()
	return resultFrom(t(ctx))
}

func begin(ctx context.Context, runner string, n int) string {
	runID := uuid.NewString()
	log.Log(ctx, log.LogDebug, "run started", map[string]interface{}{
		"run_id": runID,
		"runner": runner,
		"tasks":  n,
	})
	return runID
}

func end(ctx context.Context, runID string, err error) {
	fields := map[string]interface{}{"run_id": runID}
	if err != nil {
		fields["error"] = err.Error()
	}
	log.Log(ctx, log.LogDebug, "run finished", fields)
}
