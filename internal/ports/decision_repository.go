package ports

import (
	"context"
	"time"
)

// One archived admission outcome.
type DecisionRecord struct {
	RunID        string
	RestaurantID string
	OrderIndex   int
	OrderDate    string
	Status       string
	TotalTime    int
	Position     int
	DecidedAt    time.Time
}

// Contract for archiving the outcomes of a run. Records are never read back
// into a run.
type DecisionRepository interface {
	SaveDecisions(ctx context.Context, records []DecisionRecord) error
	ListDecisions(ctx context.Context, runID string) ([]DecisionRecord, error)
}
