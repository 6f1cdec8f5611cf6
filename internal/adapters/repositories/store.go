package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"kitchen-order-service/internal/platform/db"
	"kitchen-order-service/internal/ports"
)

// OpenStore opens the archive database named by store ("sqlite" or "postgres").
func OpenStore(store, dbPath, databaseURL string) (*sql.DB, Dialect, error) {
	switch Dialect(store) {
	case DialectSQLite:
		if strings.TrimSpace(dbPath) == "" {
			return nil, "", fmt.Errorf("open store: DB_PATH is required for sqlite")
		}
		conn, err := db.OpenSQLite(dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("open store: %w", err)
		}
		return conn, DialectSQLite, nil
	case DialectPostgres:
		if strings.TrimSpace(databaseURL) == "" {
			return nil, "", fmt.Errorf("open store: DATABASE_URL is required for postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, "", fmt.Errorf("open store: %w", err)
		}
		return conn, DialectPostgres, nil
	}
	return nil, "", fmt.Errorf("open store: unknown store %q", store)
}

// NewDecisionRepository returns the repository matching dialect.
func NewDecisionRepository(conn *sql.DB, dialect Dialect) (ports.DecisionRepository, error) {
	switch dialect {
	case DialectSQLite:
		return NewSqliteDecisionRepository(conn), nil
	case DialectPostgres:
		return NewSQLDecisionRepository(conn), nil
	}
	return nil, fmt.Errorf("new decision repository: unknown dialect %q", dialect)
}
