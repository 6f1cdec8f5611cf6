package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects the SQL flavour of the decision archive.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// InitSchema creates the decision archive tables if they do not exist.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case DialectSQLite:
		statements = []string{
			`
			CREATE TABLE IF NOT EXISTS decisions (
				run_id TEXT NOT NULL,
				seq INTEGER NOT NULL,
				restaurant_id TEXT NOT NULL,
				order_index INTEGER NOT NULL,
				order_date TEXT NOT NULL,
				status TEXT NOT NULL,
				total_time INTEGER NOT NULL,
				position INTEGER NOT NULL,
				decided_at TEXT NOT NULL,
				PRIMARY KEY (run_id, seq)
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_decisions_restaurant
			ON decisions(restaurant_id, run_id);
			`,
		}
	case DialectPostgres:
		statements = []string{
			`
			CREATE TABLE IF NOT EXISTS decisions (
				run_id TEXT NOT NULL,
				seq INTEGER NOT NULL,
				restaurant_id TEXT NOT NULL,
				order_index INTEGER NOT NULL,
				order_date TEXT NOT NULL,
				status TEXT NOT NULL CHECK (status IN ('ACCEPTED', 'REJECTED')),
				total_time INTEGER NOT NULL,
				position INTEGER NOT NULL,
				decided_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (run_id, seq)
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_decisions_restaurant
			ON decisions(restaurant_id, run_id);
			`,
		}
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
