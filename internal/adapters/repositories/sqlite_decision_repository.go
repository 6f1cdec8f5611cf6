package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kitchen-order-service/internal/platform/obs"
	"kitchen-order-service/internal/ports"
)

// SQLite-backed implementation of the DecisionRepository port.
type SqliteDecisionRepository struct{ DB *sql.DB }

func NewSqliteDecisionRepository(db *sql.DB) *SqliteDecisionRepository {
	return &SqliteDecisionRepository{DB: db}
}

// Store all records in one transaction, numbered in slice order.
func (s *SqliteDecisionRepository) SaveDecisions(ctx context.Context, records []ports.DecisionRecord) (err error) {
	defer obs.Time(ctx, "decisions.sqlite.SaveDecisions")(&err)

	if s.DB == nil {
		return errors.New("sqlite decision repository: DB is nil")
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save decisions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO decisions (
		run_id,
		seq,
		restaurant_id,
		order_index,
		order_date,
		status,
		total_time,
		position,
		decided_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save decisions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if r.RunID == "" {
			return fmt.Errorf("save decisions: record #%d has empty run id", i+1)
		}
		_, err := stmt.ExecContext(ctx,
			r.RunID, i, r.RestaurantID, r.OrderIndex, r.OrderDate,
			r.Status, r.TotalTime, r.Position, r.DecidedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("save decisions: insert %s/O%d: %w", r.RestaurantID, r.OrderIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save decisions: commit tx: %w", err)
	}
	return nil
}

// Return the records of one run in the order they were saved.
func (s *SqliteDecisionRepository) ListDecisions(ctx context.Context, runID string) (_ []ports.DecisionRecord, err error) {
	defer obs.Time(ctx, "decisions.sqlite.ListDecisions")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite decision repository: DB is nil")
	}

	query := `
	SELECT
		run_id,
		restaurant_id,
		order_index,
		order_date,
		status,
		total_time,
		position,
		decided_at
	FROM decisions
	WHERE run_id = ?
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: query decisions table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.DecisionRecord, 0, 64)
	for rows.Next() {
		var r ports.DecisionRecord
		var decidedAt string
		if err := rows.Scan(&r.RunID, &r.RestaurantID, &r.OrderIndex, &r.OrderDate,
			&r.Status, &r.TotalTime, &r.Position, &decidedAt); err != nil {
			return nil, fmt.Errorf("list decisions: scan row: %w", err)
		}
		r.DecidedAt, err = time.Parse(time.RFC3339Nano, decidedAt)
		if err != nil {
			return nil, fmt.Errorf("list decisions: parse decided_at %q: %w", decidedAt, err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decisions: row iteration: %w", err)
	}
	return out, nil
}
