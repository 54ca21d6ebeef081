package async

import (
	"context"
	"time"
)

// Future is the pending result of a computation started with Run.
type Future[R any] struct {
	result R
	err    error
	done   chan struct{}
}

// Run starts fn in its own goroutine and returns a Future for its result.
// If the context is already cancelled the function is never invoked and the
// Future completes with the context error.
func Run[P, R any](ctx context.Context, param P, fn func(context.Context, P) (R, error)) *Future[R] {
	f := &Future[R]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation completes and returns its result.
func (f *Future[R]) Await() (R, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks like Await but gives up after the given duration,
// returning ErrTimeout. The computation itself keeps running.
func (f *Future[R]) AwaitWithTimeout(d time.Duration) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(d):
		var zero R
		return zero, ErrTimeout
	}
}

// Done returns a channel closed when the computation completes. Useful for
// select loops that multiplex a Future with other events.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[R]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
