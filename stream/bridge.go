package stream

import (
	"context"
)

// Producer is one provider invocation expressed as a function of a live
// context and an emit callback. emit returns false when the consumer has
// cancelled; the producer must stop emitting and return promptly.
type Producer[T any] func(ctx context.Context, emit func(T) bool) error

// Produce runs producer on its own goroutine and returns a Stream of the
// emitted values. The goroutine does not start until the first pull, so
// construction never blocks and never performs provider work. The
// producer's error, if any, is delivered through the stream after every
// previously emitted item has been consumed.
func Produce[T any](ctx context.Context, producer Producer[T]) *Stream[T] {
	runCtx, cancel := context.WithCancel(ctx)
	s := &Stream[T]{
		ch:     make(chan item[T]),
		cancel: cancel,
	}
	s.run = func() {
		go func() {
			defer close(s.ch)
			emit := func(v T) bool {
				select {
				case s.ch <- item[T]{val: v}:
					return true
				case <-runCtx.Done():
					return false
				}
			}
			if err := producer(runCtx, emit); err != nil {
				select {
				case s.ch <- item[T]{err: err}:
				case <-runCtx.Done():
				}
			}
		}()
	}
	return s
}

// Empty returns an already-complete stream with no values and no producer
// goroutine. Pulling from it reports exhaustion immediately.
func Empty[T any]() *Stream[T] {
	s := &Stream[T]{ch: make(chan item[T])}
	close(s.ch)
	return s
}

// FromSlice returns a complete stream over the given values. No goroutine
// is started; the values are buffered up front.
func FromSlice[T any](items []T) *Stream[T] {
	s := &Stream[T]{ch: make(chan item[T], len(items))}
	for _, v := range items {
		s.ch <- item[T]{val: v}
	}
	close(s.ch)
	return s
}

// Future runs fn on its own goroutine and returns a stream that yields
// exactly one value (or the error fn returned). Used for provider calls
// that produce a single result, such as allocating a find session.
func Future[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Stream[T] {
	return Produce(ctx, func(ctx context.Context, emit func(T) bool) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		emit(v)
		return nil
	})
}

// AwaitOne pulls the single value from a Future-style stream, blocking
// until the producer finishes.
func AwaitOne[T any](ctx context.Context, s *Stream[T]) (T, error) {
	defer s.Close()
	var zero T
	val, ok, err := s.Next(ctx)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, context.Canceled
	}
	return val, nil
}

// Await runs fn on its own goroutine and blocks until it completes. This
// is the fire-and-wait variant used for actions that surface no partial
// results. Cancelling ctx unblocks the caller; fn observes the same
// context and is expected to stop.
func Await(ctx context.Context, fn func(ctx context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
