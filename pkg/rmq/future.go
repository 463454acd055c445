package rmq

import "context"

// Future is the in-flight result of an asynchronous call. It completes
// exactly once; reading the result any number of times afterwards is safe.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// GoFuture runs fn in its own goroutine and returns a Future for its
// result. fn receives ctx and is expected to honor its cancellation; a
// caller that stops caring can additionally abandon the future via the ctx
// passed to Result.
func GoFuture[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}

	go func() {
		fut.val, fut.err = fn(ctx)
		close(fut.done)
	}()

	return fut
}

// Ack is the empty result of an asynchronous call that yields no value.
type Ack = struct{}

// GoFutureErr is GoFuture for calls that return only an error.
func GoFutureErr(ctx context.Context, fn func(ctx context.Context) error) *Future[Ack] {
	return GoFuture(ctx, func(ctx context.Context) (Ack, error) {
		return Ack{}, fn(ctx)
	})
}

// Done is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the call completes or ctx is cancelled, whichever
// comes first. Cancellation abandons the wait, not necessarily the
// underlying request; pass the same ctx to the async call to cancel both.
func (f *Future[T]) Result(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T

		return zero, &TransportError{Op: "await", Err: ctx.Err()}
	}
}
