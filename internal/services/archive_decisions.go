package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen-order-service/internal/platform/obs"
	"kitchen-order-service/internal/ports"
)

// DecisionRecords flattens group results into archive rows. Position is the
// 0-based place of the decision within its restaurant's processing order.
func DecisionRecords(runID string, results []GroupResult, decidedAt time.Time) []ports.DecisionRecord {
	n := 0
	for _, g := range results {
		n += len(g.Admission.Decisions)
	}

	out := make([]ports.DecisionRecord, 0, n)
	for _, g := range results {
		for pos, d := range g.Admission.Decisions {
			out = append(out, ports.DecisionRecord{
				RunID:        runID,
				RestaurantID: d.Order.RestaurantID,
				OrderIndex:   d.Order.Index,
				OrderDate:    d.Order.Date,
				Status:       string(d.Status),
				TotalTime:    d.Order.TotalTime,
				Position:     pos,
				DecidedAt:    decidedAt,
			})
		}
	}
	return out
}

// ArchiveDecisions writes every decision of a finished run to repo.
func ArchiveDecisions(
	ctx context.Context,
	repo ports.DecisionRepository,
	results []GroupResult,
	decidedAt time.Time,
) (err error) {
	defer obs.Time(ctx, "services.ArchiveDecisions")(&err)

	if repo == nil {
		return errors.New("archive decisions: repository must be non-nil")
	}

	runID := obs.RunID(ctx)
	if runID == "" {
		return errors.New("archive decisions: context has no run id")
	}

	records := DecisionRecords(runID, results, decidedAt)
	if err := repo.SaveDecisions(ctx, records); err != nil {
		return fmt.Errorf("archive decisions: %w", err)
	}
	return nil
}
