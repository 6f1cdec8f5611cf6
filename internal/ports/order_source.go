package ports

import (
	"context"
	"kitchen-order-service/internal/domain"
)

// Port: a boundary for loading restaurant groups, in first-seen order.
type OrderSource interface {
	// Return every restaurant group with its capacity, stock and orders.
	LoadRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
}
