package monitor

import (
	"context"
	"time"
)

// MetricsSource samples host-wide utilization. Implementations return an error
// when the counters cannot be read; the collector treats that as
// SourceUnavailable for the tick.
type MetricsSource interface {
	Sample(ctx context.Context) (MetricsReading, error)
}

// ProcessSource enumerates live processes. Processes that vanish or cannot be
// read mid-enumeration are omitted from the result rather than failing the call.
type ProcessSource interface {
	Enumerate(ctx context.Context) ([]RawProcess, error)
}

// ProcessControl terminates processes. It never returns an error; failures are
// described by detail.
type ProcessControl interface {
	Terminate(ctx context.Context, pid uint32) (succeeded bool, detail string)
}

// callResult carries a bounded call's return values across goroutines.
type callResult[T any] struct {
	value T
	err   error
}

// callWithTimeout runs fn with a deadline and returns when either fn finishes or
// the deadline passes, so a source that ignores its context cannot stall a tick.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resultCh := make(chan callResult[T], 1)
	go func() {
		v, err := fn(ctx)
		resultCh <- callResult[T]{v, err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-resultCh:
		return r.value, r.err
	}
}
