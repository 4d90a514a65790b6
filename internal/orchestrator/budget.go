package orchestrator

import "sync"

// BudgetStatus represents the current state of budget consumption.
type BudgetStatus int

const (
	// BudgetOK indicates usage is below the warning threshold.
	BudgetOK BudgetStatus = iota
	// BudgetWarning indicates usage is between warning and exhaustion.
	BudgetWarning
	// BudgetExhausted indicates the budget is fully consumed.
	BudgetExhausted
)

// String returns a human-readable representation of the budget status.
func (s BudgetStatus) String() string {
	switch s {
	case BudgetOK:
		return "OK"
	case BudgetWarning:
		return "Warning"
	case BudgetExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// DefaultWarningThreshold is the usage fraction at which warnings begin.
const DefaultWarningThreshold = 0.80

// BudgetTracker accumulates token usage against a configured ceiling. It is
// one of the two resources mutated by concurrent workers (the other being
// the limiter); all mutation happens under its mutex.
type BudgetTracker struct {
	budget           int64
	used             int64
	warningThreshold float64
	mu               sync.Mutex
}

// NewBudgetTracker creates a tracker for the given token budget. A budget
// of zero or less means unlimited.
func NewBudgetTracker(budget int64) *BudgetTracker {
	return &BudgetTracker{
		budget:           budget,
		warningThreshold: DefaultWarningThreshold,
	}
}

// Add records tokens consumed by a completed worker and returns the
// resulting status.
func (t *BudgetTracker) Add(tokens int64) BudgetStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.used += tokens
	return t.statusLocked()
}

// Status returns the current budget status.
func (t *BudgetTracker) Status() BudgetStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

// statusLocked computes the status. Must be called with the lock held.
func (t *BudgetTracker) statusLocked() BudgetStatus {
	if t.budget <= 0 {
		return BudgetOK
	}

	fraction := float64(t.used) / float64(t.budget)
	if fraction >= 1.0 {
		return BudgetExhausted
	}
	if fraction >= t.warningThreshold {
		return BudgetWarning
	}
	return BudgetOK
}

// CanStart returns true if new workers may be admitted. Returns false once
// the budget is exhausted; in-flight workers are still allowed to finish.
func (t *BudgetTracker) CanStart() bool {
	return t.Status() != BudgetExhausted
}

// Used returns the total tokens consumed so far.
func (t *BudgetTracker) Used() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.used
}

// Budget returns the configured ceiling (zero or less means unlimited).
func (t *BudgetTracker) Budget() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.budget
}
