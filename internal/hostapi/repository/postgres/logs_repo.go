// Package postgres durably archives DecisionLogEntry rows past the
// in-memory ring buffer's retention window.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/ironclad-games/dominion/pkg/dominion"
)

// LogsRepo persists decision log entries for a world.
type LogsRepo struct {
	db *sql.DB
}

// NewLogsRepo wraps an existing connection pool.
func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

// EnsureSchema creates the decision_logs table if it does not already exist.
// worldServer calls this once at startup rather than shipping a migration
// tool, matching the teacher's habit of a plain SQL string next to the repo.
func (r *LogsRepo) EnsureSchema(ctx context.Context) error {
	const stmt = `
CREATE TABLE IF NOT EXISTS decision_logs (
	id BIGSERIAL PRIMARY KEY,
	world_id TEXT NOT NULL,
	tick INTEGER NOT NULL,
	country_id INTEGER NOT NULL,
	score INTEGER NOT NULL,
	rejected BOOLEAN NOT NULL,
	reject_reason TEXT NOT NULL DEFAULT '',
	entry JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS decision_logs_world_tick_idx ON decision_logs (world_id, tick);
`
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure decision_logs schema: %w", err)
	}
	return nil
}

// InsertTick archives every country's DecisionLogEntry for one tick.
func (r *LogsRepo) InsertTick(ctx context.Context, worldID string, entries []dominion.DecisionLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tick insert: %w", err)
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO decision_logs (world_id, tick, country_id, score, rejected, reject_reason, entry)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal decision log entry: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt, worldID, e.Tick, e.CountryID, e.Score, e.Rejected, e.RejectReason, raw); err != nil {
			return fmt.Errorf("insert decision log entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tick insert: %w", err)
	}
	return nil
}

// ListByCountry returns a country's archived log entries across all ticks,
// oldest first, beyond what the in-process ring buffer still holds.
func (r *LogsRepo) ListByCountry(ctx context.Context, worldID string, countryID int) ([]dominion.DecisionLogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT entry FROM decision_logs WHERE world_id = $1 AND country_id = $2 ORDER BY tick ASC`,
		worldID, countryID)
	if err != nil {
		return nil, fmt.Errorf("query decision logs: %w", err)
	}
	defer rows.Close()

	var out []dominion.DecisionLogEntry
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan decision log entry: %w", err)
		}
		var e dominion.DecisionLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("unmarshal decision log entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
