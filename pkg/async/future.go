package async

import (
	"context"
	"errors"
	"time"
)

// Future holds the result of a function running in its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Run starts fn(ctx, param) in a new goroutine and returns its Future.
// If ctx is already done, fn is skipped and the Future fails with ErrNotStarted.
func Run[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = errors.Join(ErrNotStarted, err)
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the function completes or ctx is done.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, errors.Join(ErrWaitCancelled, ctx.Err())
	}
}

// AwaitTimeout is Await bounded by d.
func (f *Future[U]) AwaitTimeout(d time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(d):
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed once the function has returned.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// WaitAll waits for every future and returns results in input order.
// Unlike a fail-fast wait it never abandons the remaining futures: all
// errors are collected and joined.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var errs []error

	for i, f := range futures {
		res, err := f.Await(ctx)
		results[i] = res
		if err != nil {
			errs = append(errs, err)
		}
	}

	return results, errors.Join(errs...)
}
