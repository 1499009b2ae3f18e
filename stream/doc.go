// Package stream implements the result stream bridge between sink-style
// provider calls and pull-based consumers.
//
// A provider operation pushes items into a per-call sink; the bridge runs
// the call on its own goroutine and exposes the emitted items as a
// Stream: a lazily evaluated, single-pass, cancellable sequence. The
// producer does not start until the first pull, construction never
// blocks, and cancelling a stream both stops future pulls and signals
// the producer to abandon work.
//
// # Usage
//
//	s := stream.Produce(ctx, func(ctx context.Context, emit func(int) bool) error {
//	    for i := range 10 {
//	        if !emit(i) {
//	            return nil
//	        }
//	    }
//	    return nil
//	})
//	defer s.Close()
//	items, err := stream.Collect(ctx, s)
package stream
