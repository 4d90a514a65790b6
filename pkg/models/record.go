package models

import "time"

// RunStatus represents the orchestrator's top-level state for a run.
type RunStatus string

const (
	// RunNotStarted indicates execution has not begun.
	RunNotStarted RunStatus = "not_started"
	// RunRunning indicates phases are being executed.
	RunRunning RunStatus = "running"
	// RunFinished indicates all phases completed.
	RunFinished RunStatus = "finished"
	// RunAborted indicates the run stopped before completing all phases.
	RunAborted RunStatus = "aborted"
)

// AbortReason explains why a run transitioned to RunAborted.
type AbortReason string

const (
	// AbortNone means the run was not aborted.
	AbortNone AbortReason = ""
	// AbortApprovalDenied means an approval gate denied a phase or worker.
	AbortApprovalDenied AbortReason = "approval_denied"
	// AbortBudgetExceeded means the token budget was exhausted mid-run.
	AbortBudgetExceeded AbortReason = "budget_exceeded"
	// AbortCriticalFailure means a worker in a critical capability failed.
	AbortCriticalFailure AbortReason = "critical_failure"
	// AbortCancelled means the run context was cancelled.
	AbortCancelled AbortReason = "cancelled"
)

// WorkerResult is the outcome of running one spec. Immutable once produced.
type WorkerResult struct {
	// SpecID is the WorkerSpec this result belongs to.
	SpecID string `json:"spec_id"`
	// Role is the worker role copied from the spec.
	Role string `json:"role"`
	// Capability is the capability copied from the spec.
	Capability Capability `json:"capability"`
	// Success is true if the worker completed without error.
	Success bool `json:"success"`
	// Output is the worker's text output, if any.
	Output string `json:"output,omitempty"`
	// TokensUsed is the token cost of this worker.
	TokensUsed int64 `json:"tokens_used"`
	// Duration is the wall-clock execution time.
	Duration time.Duration `json:"duration"`
	// Error holds the failure detail when Success is false.
	Error string `json:"error,omitempty"`
}

// TaskExecutionRecord is the aggregate outcome of a plan run. It is owned
// exclusively by the orchestrator for the duration of a run and handed off
// read-only to the result sink at the end.
type TaskExecutionRecord struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`
	// Task is the original task description.
	Task string `json:"task"`
	// Policy is the autonomy policy the run executed under.
	Policy AutonomyPolicy `json:"policy"`
	// Plan is the executed plan.
	Plan *ExecutionPlan `json:"plan"`
	// Results holds one entry per worker that was started, in completion
	// order.
	Results []WorkerResult `json:"results"`
	// Status is the final run status.
	Status RunStatus `json:"status"`
	// AbortReason is set when Status is RunAborted.
	AbortReason AbortReason `json:"abort_reason,omitempty"`
	// Success is true iff no critical failure and no abort occurred.
	Success bool `json:"success"`
	// TokensUsed is the total token cost across all workers.
	TokensUsed int64 `json:"tokens_used"`
	// StartedAt and CompletedAt bound the run.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// SuccessCount returns the number of successful worker results.
func (r *TaskExecutionRecord) SuccessCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}

// FailureCount returns the number of failed worker results.
func (r *TaskExecutionRecord) FailureCount() int {
	return len(r.Results) - r.SuccessCount()
}

// Duration returns the wall-clock duration of the run.
func (r *TaskExecutionRecord) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
