package ports

import (
	"context"
	"ride-view-service/internal/domain"
)

// Contract for retrieving one customer's current order snapshot.
type OrderSource interface {
	// Return the customer's active and past orders, routes included.
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
}
