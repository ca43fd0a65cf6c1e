package task

import (
	"context"
	"sync"

	"github.com/on-the-ground/oneliners_go/shared/log"
	"github.com/on-the-ground/oneliners_go/shared/orderedbuffer"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// RunSequence runs tasks one after another. It stops at the first failure;
// later tasks are never started.
func RunSequence[R any](ctx context.Context, tasks []Task[R]) ([]R, error) {
	runID := begin(ctx, "sequence", len(tasks))

	out := make([]R, 0, len(tasks))
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			runErr := &Error{Index: i, Err: err}
			end(ctx, runID, runErr)
			return nil, runErr
		}
		res := invoke(ctx, runID, i, t)
		if res.Err != nil {
			runErr := &Error{Index: i, Err: res.Err}
			end(ctx, runID, runErr)
			return nil, runErr
		}
		out = append(out, res.Value)
	}

	end(ctx, runID, nil)
	return out, nil
}

// RunParallel starts every task at once and returns their values in input order.
// It returns as soon as the first failure arrives, without waiting for the
// remaining tasks, and cancels the context they share.
func RunParallel[R any](ctx context.Context, tasks []Task[R]) ([]R, error) {
	runID := begin(ctx, "parallel", len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	arrived := make(chan indexed[R], len(tasks))
	for i, t := range tasks {
		g.Go(func() error {
			res := invoke(gctx, runID, i, t)
			arrived <- indexed[R]{index: i, res: res}
			return res.Err
		})
	}

	out := make([]R, len(tasks))
	for range tasks {
		it := <-arrived
		if it.res.Err != nil {
			// late tasks write into the buffered channel and exit on their own
			runErr := &Error{Index: it.index, Err: it.res.Err}
			end(ctx, runID, runErr)
			return nil, runErr
		}
		out[it.index] = it.res.Value
	}

	if err := g.Wait(); err != nil {
		end(ctx, runID, err)
		return nil, err
	}
	end(ctx, runID, nil)
	return out, nil
}

type indexed[R any] struct {
	index int
	res   Result[R]
}

// RunParallelStream starts every task at once and emits each result as soon
// as it and all of its predecessors are done, so the channel yields results
// in input order. The channel is closed after the last result.
func RunParallelStream[R any](ctx context.Context, tasks []Task[R]) <-chan Result[R] {
	runID := begin(ctx, "parallel_stream", len(tasks))

	arrived := make(chan indexed[R], len(tasks))
	for i, t := range tasks {
		go func() {
			arrived <- indexed[R]{index: i, res: invoke(ctx, runID, i, t)}
		}()
	}

	buf := orderedbuffer.NewOrderedBuffer(len(tasks), func(it indexed[R]) int {
		return it.index
	})

	go func() {
		// results that already arrived are delivered even after ctx is cancelled
		bufCtx := context.WithoutCancel(ctx)
		var firstErr error
		for range tasks {
			it := <-arrived
			if it.res.Err != nil && firstErr == nil {
				firstErr = &Error{Index: it.index, Err: it.res.Err}
			}
			if err := buf.Insert(bufCtx, it); err != nil {
				log.Log(ctx, log.LogError, "failed to buffer task result", map[string]interface{}{
					"run_id": runID,
					"index":  it.index,
					"error":  err.Error(),
				})
			}
		}
		buf.Close(bufCtx)
		end(ctx, runID, firstErr)
	}()

	out := make(chan Result[R], len(tasks))
	go func() {
		defer close(out)
		for it := range buf.Source() {
			out <- it.res
		}
	}()
	return out
}

// RunSettled waits for every task and returns all results in input order.
// The error combines every failure; it is nil only when all tasks succeed.
func RunSettled[R any](ctx context.Context, tasks []Task[R]) ([]Result[R], error) {
	runID := begin(ctx, "settled", len(tasks))

	results := make([]Result[R], len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = invoke(ctx, runID, i, t)
		}()
	}
	wg.Wait()

	var err error
	for i, res := range results {
		if res.Err != nil {
			err = multierr.Append(err, &Error{Index: i, Err: res.Err})
		}
	}
	end(ctx, runID, err)
	return results, err
}
