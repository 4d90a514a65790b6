package orchestrator

import "context"

// limiter is a semaphore capping the number of simultaneously in-flight
// workers. One limiter is shared across the whole run and never reset
// between phases, so the cap holds even when a phase is larger than it.
type limiter struct {
	slots chan struct{}
}

// newLimiter creates a limiter with the given capacity.
func newLimiter(capacity int) *limiter {
	if capacity < 1 {
		capacity = 1
	}
	return &limiter{slots: make(chan struct{}, capacity)}
}

// Acquire blocks until a slot is free or the context is cancelled.
func (l *limiter) Acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot. Must be called exactly once per successful Acquire.
func (l *limiter) Release() {
	<-l.slots
}

// InFlight returns the number of currently held slots.
func (l *limiter) InFlight() int {
	return len(l.slots)
}
