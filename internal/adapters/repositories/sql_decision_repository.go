package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kitchen-order-service/internal/platform/obs"
	"kitchen-order-service/internal/ports"
)

const (
	pgInsertDecision = `
	INSERT INTO decisions (
		run_id, seq, restaurant_id, order_index, order_date,
		status, total_time, position, decided_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	pgSelectDecisions = `
	SELECT run_id, restaurant_id, order_index, order_date,
		status, total_time, position, decided_at
	FROM decisions
	WHERE run_id = $1
	ORDER BY seq;
	`
)

// SQLDecisionRepository is a Postgres-backed DecisionRepository.
type SQLDecisionRepository struct {
	DB *sql.DB
}

func NewSQLDecisionRepository(db *sql.DB) *SQLDecisionRepository {
	return &SQLDecisionRepository{DB: db}
}

func (s *SQLDecisionRepository) SaveDecisions(ctx context.Context, records []ports.DecisionRecord) (err error) {
	defer obs.Time(ctx, "decisions.postgres.SaveDecisions")(&err)

	if s.DB == nil {
		return errors.New("decision repository: db is nil")
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save decisions: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, pgInsertDecision)
	if err != nil {
		return fmt.Errorf("save decisions: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if r.RunID == "" {
			return fmt.Errorf("save decisions: record #%d has empty run id", i+1)
		}
		if _, err := stmt.ExecContext(ctx,
			r.RunID, i, r.RestaurantID, r.OrderIndex, r.OrderDate,
			r.Status, r.TotalTime, r.Position, r.DecidedAt,
		); err != nil {
			return fmt.Errorf("save decisions %s/O%d: %w", r.RestaurantID, r.OrderIndex, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save decisions commit: %w", err)
	}

	return nil
}

func (s *SQLDecisionRepository) ListDecisions(ctx context.Context, runID string) (_ []ports.DecisionRecord, err error) {
	defer obs.Time(ctx, "decisions.postgres.ListDecisions")(&err)

	if s.DB == nil {
		return nil, errors.New("decision repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, pgSelectDecisions, runID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: query decisions table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.DecisionRecord, 0, 64)
	for rows.Next() {
		var r ports.DecisionRecord
		if err := rows.Scan(&r.RunID, &r.RestaurantID, &r.OrderIndex, &r.OrderDate,
			&r.Status, &r.TotalTime, &r.Position, &r.DecidedAt); err != nil {
			return nil, fmt.Errorf("list decisions: scan rows: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decisions: row iteration: %w", err)
	}

	return out, nil
}
