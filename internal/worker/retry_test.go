package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maestro-cli/maestro/pkg/models"
)

// scriptedWorker returns the errors in errs one per Execute call, then
// succeeds.
type scriptedWorker struct {
	errs  []error
	calls int
}

func (w *scriptedWorker) ID() string                    { return "scripted" }
func (w *scriptedWorker) Capability() models.Capability { return models.CapabilityCodeWriting }

func (w *scriptedWorker) Execute(ctx context.Context, subtask string) (*Result, error) {
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		return nil, err
	}
	return &Result{Output: "ok", TokensUsed: 10}, nil
}

func TestRetrier_SucceedsFirstAttempt(t *testing.T) {
	w := &scriptedWorker{}
	r := NewRetrier(3, time.Millisecond)

	res, err := r.Do(context.Background(), w, "task")
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if res.Output != "ok" {
		t.Errorf("Output = %q, want ok", res.Output)
	}
	if w.calls != 1 {
		t.Errorf("worker executed %d times, want 1", w.calls)
	}
}

func TestRetrier_RetriesTransient(t *testing.T) {
	w := &scriptedWorker{errs: []error{
		Transient(errors.New("rate limited")),
		Transient(errors.New("overloaded")),
	}}
	r := NewRetrier(3, time.Millisecond)

	res, err := r.Do(context.Background(), w, "task")
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if res == nil {
		t.Fatal("nil result after recovery")
	}
	if w.calls != 3 {
		t.Errorf("worker executed %d times, want 3", w.calls)
	}
}

func TestRetrier_NonTransientFailsImmediately(t *testing.T) {
	planErr := errors.New("invalid subtask")
	w := &scriptedWorker{errs: []error{planErr}}
	r := NewRetrier(3, time.Millisecond)

	_, err := r.Do(context.Background(), w, "task")
	if !errors.Is(err, planErr) {
		t.Errorf("err = %v, want the original error", err)
	}
	if w.calls != 1 {
		t.Errorf("worker executed %d times, want 1 (no retry)", w.calls)
	}
}

func TestRetrier_ExhaustsAttempts(t *testing.T) {
	w := &scriptedWorker{errs: []error{
		Transient(errors.New("one")),
		Transient(errors.New("two")),
		Transient(errors.New("three")),
	}}
	r := NewRetrier(3, time.Millisecond)

	_, err := r.Do(context.Background(), w, "task")
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if err.Error() != "three" {
		t.Errorf("err = %q, want the last attempt's error", err)
	}
	if w.calls != 3 {
		t.Errorf("worker executed %d times, want 3", w.calls)
	}
}

func TestRetrier_CancelledDuringBackoff(t *testing.T) {
	w := &scriptedWorker{errs: []error{
		Transient(errors.New("rate limited")),
		Transient(errors.New("rate limited")),
	}}
	r := NewRetrier(3, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := r.Do(ctx, w, "task")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if w.calls != 1 {
		t.Errorf("worker executed %d times, want 1", w.calls)
	}
}

func TestNewRetrier_Defaults(t *testing.T) {
	r := NewRetrier(0, 0)
	if r.maxAttempts != DefaultMaxAttempts {
		t.Errorf("maxAttempts = %d, want %d", r.maxAttempts, DefaultMaxAttempts)
	}
	if r.backoff != DefaultBackoff {
		t.Errorf("backoff = %v, want %v", r.backoff, DefaultBackoff)
	}
}

func TestTransient(t *testing.T) {
	if Transient(nil) != nil {
		t.Error("Transient(nil) should be nil")
	}

	base := errors.New("boom")
	wrapped := Transient(base)
	if !IsTransient(wrapped) {
		t.Error("wrapped error should be transient")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}
	if IsTransient(base) {
		t.Error("bare error should not be transient")
	}
}
