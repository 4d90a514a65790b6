package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maestro-cli/maestro/pkg/models"
)

// run holds the mutable state of one Execute call. The record is owned
// exclusively by the run until finalize hands it off.
type run struct {
	o       *Orchestrator
	record  *models.TaskExecutionRecord
	limiter *limiter
	budget  *BudgetTracker

	mu          sync.Mutex
	abortReason models.AbortReason
	abortMsg    string
	warned      bool
}

// aborted returns true once any abort signal has fired.
func (r *run) aborted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.abortReason != models.AbortNone
}

// abort records the first abort signal; later signals are ignored. It is a
// cooperative cancellation: in-flight workers drain, no new worker is
// admitted.
func (r *run) abort(reason models.AbortReason, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.abortReason != models.AbortNone {
		return
	}
	r.abortReason = reason
	r.abortMsg = msg
	r.o.logger.Log("[run %s] abort: %s (%s)", r.record.RunID, reason, msg)
}

// requestApproval blocks on the approval gate. A missing gate or a gate
// error counts as denial; execution must never proceed past a gate it
// could not consult.
func (r *run) requestApproval(ctx context.Context, description string) bool {
	if r.o.gate == nil {
		r.o.logger.Log("[run %s] approval required but no gate configured: %s", r.record.RunID, description)
		return false
	}
	approved, err := r.o.gate.Request(ctx, description)
	if err != nil {
		r.o.logger.Log("[run %s] approval gate error: %v", r.record.RunID, err)
		return false
	}
	return approved
}

// runParallel starts every spec in the phase as an independent concurrent
// execution gated by the shared limiter, then waits for the phase to
// drain. Admission happens under a held slot, and each worker's result is
// collected before its slot is released, so a worker waiting at the
// limiter always sees the budget and abort state of everything that
// finished before it.
func (r *run) runParallel(ctx context.Context, phaseIdx int, phase models.ExecutionPhase) {
	var wg sync.WaitGroup

	for _, spec := range phase.Specs {
		if err := r.limiter.Acquire(ctx); err != nil {
			r.abort(models.AbortCancelled, err.Error())
			break
		}
		if !r.admit(ctx, spec) {
			r.limiter.Release()
			break
		}

		wg.Add(1)
		go func(spec models.WorkerSpec) {
			defer wg.Done()
			res := r.executeSpec(ctx, phaseIdx, spec)
			r.collect(res)
			r.limiter.Release()
		}(spec)
	}

	wg.Wait()
}

// runSequential runs specs strictly in listed order, one at a time. The
// shared limiter is still honored so the global cap holds.
func (r *run) runSequential(ctx context.Context, phaseIdx int, phase models.ExecutionPhase) {
	for _, spec := range phase.Specs {
		if err := r.limiter.Acquire(ctx); err != nil {
			r.abort(models.AbortCancelled, err.Error())
			return
		}
		if !r.admit(ctx, spec) {
			r.limiter.Release()
			return
		}

		res := r.executeSpec(ctx, phaseIdx, spec)
		r.collect(res)
		r.limiter.Release()
	}
}

// admit decides whether the next worker may start: no abort signal has
// fired, budget remains, and (under the Interactive policy) the gate
// approved this specific worker.
func (r *run) admit(ctx context.Context, spec models.WorkerSpec) bool {
	if r.aborted() {
		return false
	}
	if ctx.Err() != nil {
		r.abort(models.AbortCancelled, ctx.Err().Error())
		return false
	}
	if !r.budget.CanStart() {
		r.abort(models.AbortBudgetExceeded, fmt.Sprintf("token budget of %d exhausted", r.budget.Budget()))
		return false
	}
	if r.o.policy == models.PolicyInteractive {
		desc := fmt.Sprintf("%s (%s): %s", spec.Role, spec.Capability, spec.Subtask)
		if !r.requestApproval(ctx, desc) {
			r.abort(models.AbortApprovalDenied, fmt.Sprintf("approval denied for worker %s", spec.ID))
			return false
		}
	}
	return true
}

// executeSpec creates the worker for a spec and runs it through the
// retrier. It always returns a WorkerResult, success or not; the worker
// itself never touches run state.
func (r *run) executeSpec(ctx context.Context, phaseIdx int, spec models.WorkerSpec) models.WorkerResult {
	r.o.emitter.Emit(Event{
		Type:       EventWorkerStarted,
		RunID:      r.record.RunID,
		Phase:      phaseIdx,
		SpecID:     spec.ID,
		Role:       spec.Role,
		Capability: spec.Capability,
		TokensUsed: r.budget.Used(),
	})

	start := time.Now()

	w, err := r.o.factory.Worker(spec)
	if err != nil {
		return models.WorkerResult{
			SpecID:     spec.ID,
			Role:       spec.Role,
			Capability: spec.Capability,
			Duration:   time.Since(start),
			Error:      fmt.Sprintf("create worker: %v", err),
		}
	}

	if r.o.workerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.o.workerTimeout)
		defer cancel()
	}

	res, err := r.o.retrier.Do(ctx, w, spec.Subtask)
	if err != nil {
		return models.WorkerResult{
			SpecID:     spec.ID,
			Role:       spec.Role,
			Capability: spec.Capability,
			Duration:   time.Since(start),
			Error:      err.Error(),
		}
	}

	return models.WorkerResult{
		SpecID:     spec.ID,
		Role:       spec.Role,
		Capability: spec.Capability,
		Success:    true,
		Output:     res.Output,
		TokensUsed: res.TokensUsed,
		Duration:   res.Duration,
	}
}

// collect is the single point where results enter the record and shared
// counters. It appends the result, charges the budget, and raises abort
// signals for budget exhaustion and critical failures. Workers never touch
// run state directly; everything flows through here.
func (r *run) collect(res models.WorkerResult) {
	r.mu.Lock()
	r.record.Results = append(r.record.Results, res)
	r.mu.Unlock()

	status := r.budget.Add(res.TokensUsed)

	eventType := EventWorkerCompleted
	message := ""
	if !res.Success {
		eventType = EventWorkerFailed
		message = res.Error
	}
	r.o.emitter.Emit(Event{
		Type:       eventType,
		RunID:      r.record.RunID,
		SpecID:     res.SpecID,
		Role:       res.Role,
		Capability: res.Capability,
		Message:    message,
		TokensUsed: r.budget.Used(),
	})

	switch status {
	case BudgetWarning:
		r.mu.Lock()
		first := !r.warned
		r.warned = true
		r.mu.Unlock()
		if first {
			r.o.emitter.Emit(Event{
				Type:       EventBudgetWarning,
				RunID:      r.record.RunID,
				Message:    fmt.Sprintf("token usage %d of %d", r.budget.Used(), r.budget.Budget()),
				TokensUsed: r.budget.Used(),
			})
		}
	case BudgetExhausted:
		r.abort(models.AbortBudgetExceeded, fmt.Sprintf("token budget of %d exhausted", r.budget.Budget()))
	}

	if !res.Success && res.Capability.Critical() {
		r.abort(models.AbortCriticalFailure, fmt.Sprintf("critical worker %s failed: %s", res.SpecID, res.Error))
	}
}

// finalize computes the terminal status, emits the closing event, and hands
// the record to the sink exactly once.
func (r *run) finalize(ctx context.Context) *models.TaskExecutionRecord {
	r.mu.Lock()
	reason := r.abortReason
	msg := r.abortMsg
	r.mu.Unlock()

	rec := r.record
	rec.TokensUsed = r.budget.Used()
	rec.CompletedAt = time.Now()

	if reason != models.AbortNone {
		rec.Status = models.RunAborted
		rec.AbortReason = reason
		rec.Success = false
		r.o.emitter.Emit(Event{
			Type:       EventRunAborted,
			RunID:      rec.RunID,
			Message:    msg,
			TokensUsed: rec.TokensUsed,
		})
	} else {
		rec.Status = models.RunFinished
		rec.Success = true
		r.o.emitter.Emit(Event{
			Type:       EventRunCompleted,
			RunID:      rec.RunID,
			TokensUsed: rec.TokensUsed,
		})
	}

	r.o.logger.Log("[run %s] finalized: status=%s success=%v results=%d tokens=%d",
		rec.RunID, rec.Status, rec.Success, len(rec.Results), rec.TokensUsed)

	if r.o.sink != nil {
		if err := r.o.sink.Persist(ctx, rec); err != nil {
			r.o.logger.Log("[run %s] result sink failed: %v", rec.RunID, err)
		}
	}

	return rec
}
