// Package orchestrator executes planned worker teams under a configurable
// concurrency and approval policy.
//
// The orchestrator consumes an ExecutionPlan and runs its phases in order:
//   - Each phase is gated behind approval according to the active
//     AutonomyPolicy before any of its workers start.
//   - Parallel phases run their workers concurrently behind one shared
//     limiter sized to the configured maximum; the limiter spans the whole
//     run, not a single phase.
//   - Worker results flow back through a single collection point into the
//     run's TaskExecutionRecord; workers never mutate orchestrator state.
//   - Budget exhaustion, approval denial, critical worker failure, and
//     context cancellation all stop admission of new workers while letting
//     in-flight workers drain.
//
// Execution errors are absorbed into the record rather than surfaced as Go
// errors; callers always receive a record with a Finished or Aborted status.
package orchestrator
