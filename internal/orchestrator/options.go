package orchestrator

import (
	"context"
	"time"

	"github.com/maestro-cli/maestro/internal/worker"
	"github.com/maestro-cli/maestro/pkg/models"
)

// DefaultMaxWorkers caps in-flight workers when no limit is configured.
// The cap applies across the whole run, not per phase.
const DefaultMaxWorkers = 5

// ApprovalGate is asked to approve phases (or individual workers under the
// Interactive policy) before they run. The orchestrator blocks the affected
// phase on the response.
type ApprovalGate interface {
	Request(ctx context.Context, description string) (bool, error)
}

// ResultSink persists the final record of a run. It is called exactly once
// per run, after the record reaches Finished or Aborted.
type ResultSink interface {
	Persist(ctx context.Context, record *models.TaskExecutionRecord) error
}

// RequiredConfig contains the minimal required configuration for an
// Orchestrator.
type RequiredConfig struct {
	// Factory creates workers for planned specs.
	Factory worker.Factory
}

// Option configures an Orchestrator. Use With* functions to create Options.
type Option func(*orchestratorOptions)

type orchestratorOptions struct {
	policy        models.AutonomyPolicy
	maxWorkers    int
	budget        int64
	workerTimeout time.Duration
	gate          ApprovalGate
	sink          ResultSink
	retrier       *worker.Retrier
	emitter       *EventEmitter
	logger        *DebugLogger
}

// WithPolicy sets the autonomy policy. The default is Balanced.
func WithPolicy(p models.AutonomyPolicy) Option {
	return func(o *orchestratorOptions) { o.policy = p }
}

// WithMaxWorkers sets the shared limiter capacity.
func WithMaxWorkers(n int) Option {
	return func(o *orchestratorOptions) { o.maxWorkers = n }
}

// WithBudget sets the token budget for each run. Zero means unlimited.
func WithBudget(tokens int64) Option {
	return func(o *orchestratorOptions) { o.budget = tokens }
}

// WithWorkerTimeout bounds each worker invocation. Zero means no timeout.
func WithWorkerTimeout(d time.Duration) Option {
	return func(o *orchestratorOptions) { o.workerTimeout = d }
}

// WithApprovalGate sets the approval gate. Without a gate, any policy that
// requires approval denies the affected phase.
func WithApprovalGate(g ApprovalGate) Option {
	return func(o *orchestratorOptions) { o.gate = g }
}

// WithSink sets the result sink that receives the final record.
func WithSink(s ResultSink) Option {
	return func(o *orchestratorOptions) { o.sink = s }
}

// WithRetrier sets the retrier wrapping worker invocations.
func WithRetrier(r *worker.Retrier) Option {
	return func(o *orchestratorOptions) { o.retrier = r }
}

// WithEventEmitter sets a custom event emitter.
func WithEventEmitter(e *EventEmitter) Option {
	return func(o *orchestratorOptions) { o.emitter = e }
}

// WithLogger sets the debug logger.
func WithLogger(l *DebugLogger) Option {
	return func(o *orchestratorOptions) { o.logger = l }
}
