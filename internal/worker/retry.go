package worker

import (
	"context"
	"time"
)

// Retry defaults. Only transient failures at the worker-invocation boundary
// are retried; planning errors never reach this layer.
const (
	DefaultMaxAttempts = 3
	DefaultBackoff     = 2 * time.Second
)

// Retrier wraps worker execution with bounded retries and exponential
// backoff for transient failures.
type Retrier struct {
	maxAttempts int
	backoff     time.Duration
}

// NewRetrier creates a Retrier. Non-positive arguments fall back to the
// defaults.
func NewRetrier(maxAttempts int, backoff time.Duration) *Retrier {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Retrier{maxAttempts: maxAttempts, backoff: backoff}
}

// Do executes the subtask on w, retrying transient failures up to the
// attempt limit. The backoff doubles after each failed attempt. A
// non-transient error or a cancelled context returns immediately.
func (r *Retrier) Do(ctx context.Context, w Worker, subtask string) (*Result, error) {
	delay := r.backoff
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := w.Execute(ctx, subtask)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) || attempt == r.maxAttempts {
			return nil, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, lastErr
}
