package orchestrator

import (
	"testing"
)

func TestEventEmitter_EmitAndReceive(t *testing.T) {
	e := NewEventEmitter(4)
	e.Emit(Event{Type: EventWorkerStarted, SpecID: "coder-0"})
	e.Emit(Event{Type: EventWorkerCompleted, SpecID: "coder-0"})
	e.Close()

	var got []Event
	for ev := range e.Events() {
		got = append(got, ev)
	}

	if len(got) != 2 {
		t.Fatalf("received %d events, want 2", len(got))
	}
	if got[0].Type != EventWorkerStarted || got[1].Type != EventWorkerCompleted {
		t.Errorf("events out of order: %s, %s", got[0].Type, got[1].Type)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("Emit did not stamp the event")
	}
}

func TestEventEmitter_DropsWhenFull(t *testing.T) {
	e := NewEventEmitter(1)
	e.Emit(Event{Type: EventWorkerStarted})
	// No receiver; the buffer is full so this emit times out and drops.
	e.Emit(Event{Type: EventWorkerCompleted})

	if got := e.DroppedCount(); got != 1 {
		t.Errorf("DroppedCount() = %d, want 1", got)
	}
}
