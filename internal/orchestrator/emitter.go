package orchestrator

import (
	"log"
	"sync/atomic"
	"time"
)

// emitTimeout is how long Emit waits for a slow receiver before dropping.
const emitTimeout = 100 * time.Millisecond

// EventEmitter provides thread-safe event emission to subscribers. Events
// are best-effort: a full channel drops rather than blocks execution.
type EventEmitter struct {
	events       chan Event
	droppedCount atomic.Uint64
}

// NewEventEmitter creates an EventEmitter with the given buffer size.
func NewEventEmitter(bufferSize int) *EventEmitter {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &EventEmitter{
		events: make(chan Event, bufferSize),
	}
}

// Emit sends an event to the events channel. If the channel is full, it
// tries with a timeout before dropping the event.
func (e *EventEmitter) Emit(event Event) {
	event.Timestamp = time.Now()

	select {
	case e.events <- event:
		return
	default:
	}

	select {
	case e.events <- event:
	case <-time.After(emitTimeout):
		count := e.droppedCount.Add(1)
		if count%10 == 1 { // log every 10th drop to avoid spam
			log.Printf("[orchestrator] WARNING: event channel full, dropped event (total dropped: %d): type=%s", count, event.Type)
		}
	}
}

// DroppedCount returns the total number of events that have been dropped.
func (e *EventEmitter) DroppedCount() uint64 {
	return e.droppedCount.Load()
}

// Events returns a read-only channel of events for subscribers.
func (e *EventEmitter) Events() <-chan Event {
	return e.events
}

// Close closes the events channel. Call only after the last Emit.
func (e *EventEmitter) Close() {
	close(e.events)
}
