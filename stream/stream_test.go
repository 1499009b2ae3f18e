package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEmpty(t *testing.T) {
	ctx := context.Background()
	s := Empty[int]()
	_, ok, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if ok {
		t.Error("expected empty stream to be exhausted immediately")
	}
}

func TestFromSlice(t *testing.T) {
	ctx := context.Background()
	s := FromSlice([]string{"a", "b", "c"})
	got, err := Collect(ctx, s)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("expected [a b c], got %v", got)
	}
}

func TestProduceOrder(t *testing.T) {
	ctx := context.Background()
	s := Produce(ctx, func(ctx context.Context, emit func(int) bool) error {
		for i := 0; i < 5; i++ {
			if !emit(i) {
				return nil
			}
		}
		return nil
	})
	got, err := Collect(ctx, s)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("expected %d at position %d, got %d", i, i, v)
		}
	}
	if len(got) != 5 {
		t.Errorf("expected 5 values, got %d", len(got))
	}
}

func TestProduceLazyStart(t *testing.T) {
	var started atomic.Bool
	s := Produce(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		started.Store(true)
		return nil
	})
	time.Sleep(20 * time.Millisecond)
	if started.Load() {
		t.Error("producer must not start before the first pull")
	}
	s.Next(context.Background())
	if !started.Load() {
		t.Error("producer should have started after the first pull")
	}
}

func TestProduceErrorAfterItems(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	s := Produce(ctx, func(ctx context.Context, emit func(int) bool) error {
		emit(1)
		emit(2)
		return boom
	})
	got, err := Collect(ctx, s)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(got) != 2 {
		t.Errorf("items emitted before the failure must be retained, got %v", got)
	}
}

func TestCancelStopsPulls(t *testing.T) {
	ctx := context.Background()
	s := Produce(ctx, func(ctx context.Context, emit func(int) bool) error {
		for i := 0; ; i++ {
			if !emit(i) {
				return nil
			}
		}
	})

	v, ok, err := s.Next(ctx)
	if err != nil || !ok || v != 0 {
		t.Fatalf("expected first value 0, got v=%d ok=%v err=%v", v, ok, err)
	}

	s.Cancel()
	_, ok, err = s.Next(ctx)
	if err != nil {
		t.Fatalf("Next after Cancel failed: %v", err)
	}
	if ok {
		t.Error("expected no values after Cancel")
	}
}

func TestCancelSignalsProducer(t *testing.T) {
	ctx := context.Background()
	stopped := make(chan struct{})
	s := Produce(ctx, func(ctx context.Context, emit func(int) bool) error {
		defer close(stopped)
		for i := 0; ; i++ {
			if !emit(i) {
				return nil
			}
		}
	})

	s.Next(ctx)
	s.Cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not observe cancellation")
	}
}

func TestCancelBeforeFirstPull(t *testing.T) {
	var started atomic.Bool
	s := Produce(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		started.Store(true)
		return nil
	})
	s.Cancel()
	_, ok, err := s.Next(context.Background())
	if err != nil || ok {
		t.Errorf("expected exhausted stream, got ok=%v err=%v", ok, err)
	}
	if started.Load() {
		t.Error("cancelled stream must not start its producer")
	}
}

func TestNextHonorsCallerContext(t *testing.T) {
	s := Produce(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		<-ctx.Done()
		return nil
	})
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, _, err := s.Next(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}

func TestParentContextCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	s := Produce(parent, func(ctx context.Context, emit func(int) bool) error {
		defer close(stopped)
		for i := 0; ; i++ {
			if !emit(i) {
				return nil
			}
		}
	})
	s.Next(context.Background())
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not observe parent cancellation")
	}
}

func TestFuture(t *testing.T) {
	ctx := context.Background()
	s := Future(ctx, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	v, err := AwaitOne(ctx, s)
	if err != nil {
		t.Fatalf("AwaitOne failed: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
}

func TestFutureError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("no session")
	s := Future(ctx, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	_, err := AwaitOne(ctx, s)
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestAwait(t *testing.T) {
	ctx := context.Background()
	var ran atomic.Bool
	err := Await(ctx, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if !ran.Load() {
		t.Error("expected action to run to completion")
	}
}

func TestAwaitError(t *testing.T) {
	boom := errors.New("action failed")
	err := Await(context.Background(), func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestAwaitCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Await(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDrain(t *testing.T) {
	ctx := context.Background()
	var sum int
	err := Drain(ctx, FromSlice([]int{1, 2, 3}), func(_ context.Context, v int) error {
		sum += v
		return nil
	})
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if sum != 6 {
		t.Errorf("expected sum 6, got %d", sum)
	}
}

func TestDrainSinkError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("sink")
	err := Drain(ctx, FromSlice([]int{1, 2}), func(_ context.Context, v int) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	s := FromSlice([]int{1})
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
