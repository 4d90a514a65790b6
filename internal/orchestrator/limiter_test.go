package orchestrator

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_CapsInFlight(t *testing.T) {
	l := newLimiter(2)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	if got := l.InFlight(); got != 2 {
		t.Errorf("InFlight() = %d, want 2", got)
	}

	// Third Acquire must block until a slot frees.
	acquired := make(chan struct{})
	go func() {
		if err := l.Acquire(ctx); err == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatal("Acquire succeeded past capacity")
	case <-time.After(20 * time.Millisecond):
	}

	l.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("Acquire did not proceed after Release")
	}
}

func TestLimiter_AcquireCancelled(t *testing.T) {
	l := newLimiter(1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Acquire(ctx); err == nil {
		t.Error("Acquire on a full limiter with cancelled context should fail")
	}
	if got := l.InFlight(); got != 1 {
		t.Errorf("InFlight() = %d after failed Acquire, want 1", got)
	}
}

func TestLimiter_MinimumCapacity(t *testing.T) {
	l := newLimiter(0)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if got := l.InFlight(); got != 1 {
		t.Errorf("InFlight() = %d, want 1 (capacity clamps to 1)", got)
	}
}
