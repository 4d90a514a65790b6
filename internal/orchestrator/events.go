package orchestrator

import (
	"time"

	"github.com/maestro-cli/maestro/pkg/models"
)

// EventType represents the type of orchestrator event.
type EventType string

const (
	// EventPhaseStarted indicates a phase has begun executing.
	EventPhaseStarted EventType = "phase_started"
	// EventPhaseCompleted indicates all workers in a phase have finished.
	EventPhaseCompleted EventType = "phase_completed"
	// EventWorkerStarted indicates a worker has been admitted and started.
	EventWorkerStarted EventType = "worker_started"
	// EventWorkerCompleted indicates a worker finished successfully.
	EventWorkerCompleted EventType = "worker_completed"
	// EventWorkerFailed indicates a worker finished with an error.
	EventWorkerFailed EventType = "worker_failed"
	// EventBudgetWarning indicates budget usage crossed the warning
	// threshold.
	EventBudgetWarning EventType = "budget_warning"
	// EventRunCompleted indicates the run finished all phases.
	EventRunCompleted EventType = "run_completed"
	// EventRunAborted indicates the run stopped before completing.
	EventRunAborted EventType = "run_aborted"
)

// Event is emitted by the orchestrator as a run progresses. Events are
// consumed by CLI/TUI renderers; dropping one never affects execution.
type Event struct {
	// Type is the kind of event.
	Type EventType
	// RunID identifies the run this event belongs to.
	RunID string
	// Phase is the zero-based phase index, where applicable.
	Phase int
	// PhaseDescription is the phase label, where applicable.
	PhaseDescription string
	// SpecID and Role identify the worker, where applicable.
	SpecID string
	Role   string
	// Capability is the worker's capability, where applicable.
	Capability models.Capability
	// Message provides additional context.
	Message string
	// TokensUsed is the running token total at emission time.
	TokensUsed int64
	// Timestamp is when the event occurred.
	Timestamp time.Time
}
