package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maestro-cli/maestro/pkg/models"
)

// ExecutionSummary is the lightweight row returned by ListExecutions. The
// full plan and per-worker results are loaded on demand by GetExecution.
type ExecutionSummary struct {
	RunID       string                `json:"run_id"`
	Task        string                `json:"task"`
	Policy      models.AutonomyPolicy `json:"policy"`
	Status      models.RunStatus      `json:"status"`
	AbortReason models.AbortReason    `json:"abort_reason"`
	Success     bool                  `json:"success"`
	TokensUsed  int64                 `json:"tokens_used"`
	StartedAt   time.Time             `json:"started_at"`
	CompletedAt time.Time             `json:"completed_at"`
}

// SaveRecord persists a completed execution record and its worker results
// in a single transaction.
func (db *DB) SaveRecord(rec *models.TaskExecutionRecord) error {
	planJSON, err := json.Marshal(rec.Plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO executions (run_id, task, policy, plan_json, status, abort_reason, success, tokens_used, started_at, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.RunID, rec.Task, string(rec.Policy), string(planJSON), string(rec.Status),
			string(rec.AbortReason), rec.Success, rec.TokensUsed,
			formatTime(rec.StartedAt), formatTime(rec.CompletedAt))
		if err != nil {
			return fmt.Errorf("insert execution: %w", err)
		}

		for _, res := range rec.Results {
			_, err := tx.Exec(`
				INSERT INTO worker_results (run_id, spec_id, role, capability, success, output, tokens_used, duration_ms, error)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, rec.RunID, res.SpecID, res.Role, string(res.Capability), res.Success,
				res.Output, res.TokensUsed, res.Duration.Milliseconds(), res.Error)
			if err != nil {
				return fmt.Errorf("insert worker result %s: %w", res.SpecID, err)
			}
		}

		return nil
	})
}

// GetExecution retrieves a full execution record by run ID.
// Returns nil if no execution with that ID exists.
func (db *DB) GetExecution(runID string) (*models.TaskExecutionRecord, error) {
	row := db.QueryRow(`
		SELECT run_id, task, policy, plan_json, status, abort_reason, success, tokens_used, started_at, completed_at
		FROM executions WHERE run_id = ?
	`, runID)

	var rec models.TaskExecutionRecord
	var planJSON, startedAt, completedAt string
	err := row.Scan(&rec.RunID, &rec.Task, &rec.Policy, &planJSON, &rec.Status,
		&rec.AbortReason, &rec.Success, &rec.TokensUsed, &startedAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get execution: %w", err)
	}

	if err := json.Unmarshal([]byte(planJSON), &rec.Plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	rec.StartedAt, _ = parseTime(startedAt)
	rec.CompletedAt, _ = parseTime(completedAt)

	rows, err := db.Query(`
		SELECT spec_id, role, capability, success, output, tokens_used, duration_ms, error
		FROM worker_results WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("list worker results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res models.WorkerResult
		var output, errMsg sql.NullString
		var durationMS int64
		if err := rows.Scan(&res.SpecID, &res.Role, &res.Capability, &res.Success,
			&output, &res.TokensUsed, &durationMS, &errMsg); err != nil {
			return nil, fmt.Errorf("scan worker result: %w", err)
		}
		if output.Valid {
			res.Output = output.String
		}
		if errMsg.Valid {
			res.Error = errMsg.String
		}
		res.Duration = time.Duration(durationMS) * time.Millisecond
		rec.Results = append(rec.Results, res)
	}

	return &rec, nil
}

// ListExecutions lists execution summaries, most recent first. A limit of
// zero or less returns all executions.
func (db *DB) ListExecutions(limit int) ([]ExecutionSummary, error) {
	query := `
		SELECT run_id, task, policy, status, abort_reason, success, tokens_used, started_at, completed_at
		FROM executions ORDER BY started_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list executions: %w", err)
	}
	defer rows.Close()

	var summaries []ExecutionSummary
	for rows.Next() {
		var s ExecutionSummary
		var startedAt, completedAt string
		if err := rows.Scan(&s.RunID, &s.Task, &s.Policy, &s.Status, &s.AbortReason,
			&s.Success, &s.TokensUsed, &startedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("scan execution: %w", err)
		}
		s.StartedAt, _ = parseTime(startedAt)
		s.CompletedAt, _ = parseTime(completedAt)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteExecution deletes an execution and its worker results by run ID.
func (db *DB) DeleteExecution(runID string) error {
	_, err := db.Exec("DELETE FROM executions WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("delete execution: %w", err)
	}
	return nil
}
