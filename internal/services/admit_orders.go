package services

import (
	"cmp"
	"slices"

	"kitchen-order-service/internal/domain"
)

// DefaultCeilingMinutes is the longest total processing time an order may
// have and still be accepted. The bound is inclusive.
const DefaultCeilingMinutes = 20

// AdmissionResult is the outcome of one greedy pass over a restaurant's orders.
type AdmissionResult struct {
	// Decisions are in processing order: ascending total time, ties in row order.
	Decisions []domain.Decision
	// StockAfter[i] is the remaining stock right after Decisions[i].
	StockAfter []domain.Ingredients
	Remaining  domain.Ingredients
}

// AdmitOrders decides every order of one restaurant in a single greedy pass.
//
// Orders are visited shortest total time first. An order is accepted when its
// total time is within ceiling and the stock still on hand covers its demand;
// accepting it deducts that demand from inv. A decision is never revisited,
// so a rejected order does not free room for, or reorder, anything after it.
// inv is owned by the pass until it returns.
func AdmitOrders(inv *domain.Inventory, orders []*domain.Order, ceiling int) AdmissionResult {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *domain.Order) int {
		return cmp.Compare(a.TotalTime, b.TotalTime)
	})

	res := AdmissionResult{
		Decisions:  make([]domain.Decision, 0, len(sorted)),
		StockAfter: make([]domain.Ingredients, 0, len(sorted)),
	}

	for _, o := range sorted {
		status := domain.StatusRejected
		if Eligible(o, inv, ceiling) {
			// Eligible checked coverage, so Consume cannot fail here.
			if err := inv.Consume(o.Demand); err == nil {
				status = domain.StatusAccepted
			}
		}

		res.Decisions = append(res.Decisions, domain.Decision{Order: o, Status: status})
		res.StockAfter = append(res.StockAfter, inv.Stock)
	}

	res.Remaining = inv.Stock
	return res
}

// Eligible reports whether o fits the time ceiling and the stock left in inv.
func Eligible(o *domain.Order, inv *domain.Inventory, ceiling int) bool {
	return o.TotalTime <= ceiling && inv.CanFulfill(o.Demand)
}
