package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maestro-cli/maestro/internal/api"
	"github.com/maestro-cli/maestro/pkg/models"
)

// ClaudeWorker executes a subtask with a single Claude API call. One
// generic implementation serves every capability; the specialization lives
// entirely in the system prompt.
type ClaudeWorker struct {
	spec   models.WorkerSpec
	system string
	client *api.Client
}

// NewClaudeWorker creates a worker for the given spec.
func NewClaudeWorker(spec models.WorkerSpec, client *api.Client) *ClaudeWorker {
	return &ClaudeWorker{
		spec:   spec,
		system: SystemPrompt(spec),
		client: client,
	}
}

// ID returns the spec ID this worker was created for.
func (w *ClaudeWorker) ID() string { return w.spec.ID }

// Capability returns the worker's specialization.
func (w *ClaudeWorker) Capability() models.Capability { return w.spec.Capability }

// Execute sends the subtask to the API and returns the text output with its
// token cost. Retryable API failures are surfaced as TransientError.
func (w *ClaudeWorker) Execute(ctx context.Context, subtask string) (*Result, error) {
	start := time.Now()

	completion, err := w.client.Complete(ctx, w.system, subtask)
	if err != nil {
		if errors.Is(err, api.ErrRetryable) {
			return nil, Transient(fmt.Errorf("%s: %w", w.spec.ID, err))
		}
		return nil, fmt.Errorf("%s: %w", w.spec.ID, err)
	}

	return &Result{
		Output:     completion.Text,
		TokensUsed: completion.InputTokens + completion.OutputTokens,
		Duration:   time.Since(start),
	}, nil
}

// ClaudeFactory creates Claude-backed workers sharing one API client.
type ClaudeFactory struct {
	client *api.Client
}

// NewClaudeFactory creates a factory over the given client.
func NewClaudeFactory(client *api.Client) *ClaudeFactory {
	return &ClaudeFactory{client: client}
}

// Worker creates a worker for the spec.
func (f *ClaudeFactory) Worker(spec models.WorkerSpec) (Worker, error) {
	if !spec.Capability.Valid() {
		return nil, fmt.Errorf("spec %s has unknown capability %q", spec.ID, spec.Capability)
	}
	return NewClaudeWorker(spec, f.client), nil
}

var _ Factory = (*ClaudeFactory)(nil)
