package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-cli/maestro/internal/worker"
	"github.com/maestro-cli/maestro/pkg/models"
)

// Orchestrator executes ExecutionPlans. It is stateless across runs: all
// run state lives in the TaskExecutionRecord created per Execute call.
type Orchestrator struct {
	factory       worker.Factory
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

// New creates an Orchestrator using functional options.
func New(cfg RequiredConfig, opts ...Option) *Orchestrator {
	options := &orchestratorOptions{
		policy:     models.PolicyBalanced,
		maxWorkers: DefaultMaxWorkers,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.maxWorkers < 1 {
		options.maxWorkers = DefaultMaxWorkers
	}
	if options.retrier == nil {
		options.retrier = worker.NewRetrier(worker.DefaultMaxAttempts, worker.DefaultBackoff)
	}
	if options.emitter == nil {
		options.emitter = NewEventEmitter(64)
	}
	if options.logger == nil {
		options.logger = NopLogger()
	}

	return &Orchestrator{
		factory:       cfg.Factory,
		policy:        options.policy,
		maxWorkers:    options.maxWorkers,
		budget:        options.budget,
		workerTimeout: options.workerTimeout,
		gate:          options.gate,
		sink:          options.sink,
		retrier:       options.retrier,
		emitter:       options.emitter,
		logger:        options.logger,
	}
}

// Events returns the channel for receiving orchestrator events.
func (o *Orchestrator) Events() <-chan Event {
	return o.emitter.Events()
}

// CloseEvents closes the event channel. Call after the last Execute.
func (o *Orchestrator) CloseEvents() {
	o.emitter.Close()
}

// Execute runs the plan to completion or abort and returns the record.
// Execution errors (worker failures, denial, budget exhaustion) are
// absorbed into the record and never returned as Go errors; the returned
// error is non-nil only for caller misuse.
func (o *Orchestrator) Execute(ctx context.Context, task string, plan *models.ExecutionPlan) (*models.TaskExecutionRecord, error) {
	if plan == nil {
		return nil, fmt.Errorf("execute: nil plan")
	}
	if o.factory == nil {
		return nil, fmt.Errorf("execute: no worker factory configured")
	}

	r := &run{
		o: o,
		record: &models.TaskExecutionRecord{
			RunID:     uuid.New().String()[:8],
			Task:      task,
			Policy:    o.policy,
			Plan:      plan,
			Status:    models.RunRunning,
			StartedAt: time.Now(),
		},
		limiter: newLimiter(o.maxWorkers),
		budget:  NewBudgetTracker(o.budget),
	}

	o.logger.Log("[execute] run %s: %d phases, policy=%s, max_workers=%d, budget=%d",
		r.record.RunID, len(plan.Phases), o.policy, o.maxWorkers, o.budget)

	for i, phase := range plan.Phases {
		if r.aborted() {
			break
		}
		if ctx.Err() != nil {
			r.abort(models.AbortCancelled, ctx.Err().Error())
			break
		}

		if o.needsPhaseApproval(i, len(plan.Phases), &phase) {
			if !r.requestApproval(ctx, phaseDescription(i, len(plan.Phases), &phase)) {
				r.abort(models.AbortApprovalDenied, fmt.Sprintf("approval denied for phase %d", i+1))
				break
			}
		}

		o.emitter.Emit(Event{
			Type:             EventPhaseStarted,
			RunID:            r.record.RunID,
			Phase:            i,
			PhaseDescription: phase.Description,
			TokensUsed:       r.budget.Used(),
		})
		o.logger.Log("[execute] run %s: starting phase %d/%d (parallel=%v, %d specs)",
			r.record.RunID, i+1, len(plan.Phases), phase.Parallel, len(phase.Specs))

		if phase.Parallel {
			r.runParallel(ctx, i, phase)
		} else {
			r.runSequential(ctx, i, phase)
		}

		o.emitter.Emit(Event{
			Type:             EventPhaseCompleted,
			RunID:            r.record.RunID,
			Phase:            i,
			PhaseDescription: phase.Description,
			TokensUsed:       r.budget.Used(),
		})
	}

	return r.finalize(ctx), nil
}

// needsPhaseApproval implements the phase-level half of the policy mapping.
// Interactive approval happens per worker at admission time instead.
func (o *Orchestrator) needsPhaseApproval(index, total int, phase *models.ExecutionPhase) bool {
	switch o.policy {
	case models.PolicyConservative:
		return true
	case models.PolicyBalanced:
		return index == 0 || index == total-1 || phase.HasSensitiveCapability()
	case models.PolicyTrust, models.PolicyInteractive:
		return false
	default:
		// Unknown policy: fail safe by asking.
		return true
	}
}

// phaseDescription renders the approval prompt for a phase.
func phaseDescription(index, total int, phase *models.ExecutionPhase) string {
	return fmt.Sprintf("%s (%d/%d): %d worker(s)", phase.Description, index+1, total, len(phase.Specs))
}
