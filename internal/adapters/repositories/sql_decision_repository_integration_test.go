//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"kitchen-order-service/internal/platform/db"
	"kitchen-order-service/internal/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: DATABASE_URL=postgres://... go test -tags integration ./internal/adapters/repositories
func TestSQLDecisionRepositoryRoundTrip(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	conn, err := db.Open(url)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(conn, DialectPostgres))

	ctx := context.Background()
	runID := uuid.NewString()
	t.Cleanup(func() {
		_, _ = conn.Exec(`DELETE FROM decisions WHERE run_id = $1`, runID)
	})

	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	records := []ports.DecisionRecord{
		{RunID: runID, RestaurantID: "R1", OrderIndex: 3, OrderDate: "d1", Status: "ACCEPTED", TotalTime: 12, Position: 0, DecidedAt: at},
		{RunID: runID, RestaurantID: "R1", OrderIndex: 1, OrderDate: "d2", Status: "REJECTED", TotalTime: 36, Position: 1, DecidedAt: at},
	}

	repo := NewSQLDecisionRepository(conn)
	require.NoError(t, repo.SaveDecisions(ctx, records))

	got, err := repo.ListDecisions(ctx, runID)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		assert.True(t, records[i].DecidedAt.Equal(got[i].DecidedAt), "decided_at #%d", i)
		got[i].DecidedAt = records[i].DecidedAt
	}
	assert.Equal(t, records, got)
}
