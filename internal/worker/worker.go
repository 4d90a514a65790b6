// Package worker defines the worker abstraction the orchestrator executes
// plans against, plus the Claude-backed implementation of it.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/maestro-cli/maestro/pkg/models"
)

// Result is the outcome of one Execute call.
type Result struct {
	// Output is the worker's text output.
	Output string
	// TokensUsed is the token cost of the call.
	TokensUsed int64
	// Duration is the wall-clock execution time.
	Duration time.Duration
}

// Worker is anything that can accept a subtask and return a result. The
// orchestrator depends only on this interface; any implementation that
// satisfies it can be scheduled.
type Worker interface {
	// ID returns the spec ID this worker was created for.
	ID() string
	// Capability returns the specialization this worker exercises.
	Capability() models.Capability
	// Execute runs the subtask. It must respect ctx cancellation and must
	// not mutate any shared state; results flow back only through the
	// return value.
	Execute(ctx context.Context, subtask string) (*Result, error)
}

// Factory creates workers for planned specs. One worker is created per
// spec at phase-execution time.
type Factory interface {
	Worker(spec models.WorkerSpec) (Worker, error)
}

// TransientError marks a failure as retryable at the invocation boundary:
// transport errors, rate limits, upstream overload. Planning errors are
// never transient.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as retryable. Returns nil for a nil err.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err (or anything it wraps) is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
