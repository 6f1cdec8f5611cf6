package services

import (
	"context"
	"errors"
	"fmt"

	"kitchen-order-service/internal/domain"
	"kitchen-order-service/internal/platform/obs"
	"kitchen-order-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// GroupResult is the outcome for one restaurant group.
type GroupResult struct {
	Restaurant   *domain.Restaurant
	InitialStock domain.Ingredients
	Admission    AdmissionResult
}

// ProcessOrders loads every restaurant group from source and runs the
// admission pass for each, in first-seen order. Groups share nothing: each
// pass mutates only its own restaurant's inventory.
//
// Any load error aborts the whole run; no partial results are returned.
func ProcessOrders(ctx context.Context, source ports.OrderSource, ceiling int) (_ []GroupResult, err error) {
	defer obs.Time(ctx, "services.ProcessOrders")(&err)

	if source == nil {
		return nil, errors.New("process orders: source must be non-nil")
	}
	if ceiling < 0 {
		return nil, fmt.Errorf("process orders: ceiling must not be negative, got %d", ceiling)
	}

	rests, err := source.LoadRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("process orders: load restaurants: %w", err)
	}

	results := make([]GroupResult, 0, len(rests))
	for _, r := range rests {
		if r.Inventory == nil {
			return nil, fmt.Errorf("process orders: restaurant %q has no inventory", r.ID)
		}

		initial := r.Inventory.Stock
		adm := AdmitOrders(r.Inventory, r.Orders, ceiling)

		log.Debug().
			Str("run_id", obs.RunID(ctx)).
			Str("restaurant_id", r.ID).
			Int("orders", len(r.Orders)).
			Int("accepted", countAccepted(adm.Decisions)).
			Msg("restaurant processed")

		results = append(results, GroupResult{
			Restaurant:   r,
			InitialStock: initial,
			Admission:    adm,
		})
	}

	return results, nil
}

func countAccepted(ds []domain.Decision) int {
	n := 0
	for _, d := range ds {
		if d.Accepted() {
			n++
		}
	}
	return n
}
