package stream

import (
	"context"
	"sync"
	"sync/atomic"
)

// item carries a value or error through the producer channel.
type item[T any] struct {
	val T
	err error
}

// Stream is a pull-based, single-pass, cancellable sequence of values
// bound to exactly one producer invocation. A Stream is not restartable;
// re-running the operation requires a fresh call.
type Stream[T any] struct {
	start     sync.Once
	run       func()
	ch        chan item[T]
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

// Next returns the next value. It returns (zero, false, nil) when the
// stream is exhausted or cancelled, and (zero, false, err) when the
// producer failed after all previously emitted items were consumed.
// The producer goroutine is started lazily on the first pull.
func (s *Stream[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if s.cancelled.Load() {
		return zero, false, nil
	}
	if s.run != nil {
		s.start.Do(s.run)
	}
	select {
	case it, open := <-s.ch:
		if !open {
			return zero, false, nil
		}
		if it.err != nil {
			return zero, false, it.err
		}
		return it.val, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// Cancel stops future pulls and signals the producer to abandon work as
// soon as feasible. Items already consumed remain valid. Cancel is not
// undo: whatever the producer already did, it already did.
func (s *Stream[T]) Cancel() {
	s.cancelled.Store(true)
	if s.cancel != nil {
		s.cancel()
	}
}

// Close cancels the stream and releases its resources. It is idempotent
// and safe to defer immediately after construction.
func (s *Stream[T]) Close() error {
	s.Cancel()
	return nil
}

// Collect pulls all remaining values from s into a slice. On producer
// failure the values emitted before the failure are returned alongside
// the error.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	defer s.Close()
	var result []T
	for {
		val, ok, err := s.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all values from s and hands each to sink. Draining stops on
// the first sink or producer error.
func Drain[T any](ctx context.Context, s *Stream[T], sink func(context.Context, T) error) error {
	defer s.Close()
	for {
		val, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}
