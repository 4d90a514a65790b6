package store

import (
	"context"

	"github.com/maestro-cli/maestro/pkg/models"
)

// Sink persists finished execution records to a DB. It satisfies the
// orchestrator's ResultSink interface.
type Sink struct {
	db *DB
}

// NewSink wraps an open DB as a result sink. The caller retains ownership
// of the DB and is responsible for closing it.
func NewSink(db *DB) *Sink {
	return &Sink{db: db}
}

// Persist saves the record. Aborted and cancelled runs are persisted too,
// so the context is deliberately not consulted; history of a cancelled run
// is still history.
func (s *Sink) Persist(_ context.Context, rec *models.TaskExecutionRecord) error {
	return s.db.SaveRecord(rec)
}
