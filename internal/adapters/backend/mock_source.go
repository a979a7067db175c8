package backend

import (
	"context"
	"ride-view-service/internal/domain"
)

// MockSource is a deterministic in-memory stop and order source for
// tests and local development.
type MockSource struct {
	StopList []domain.Stop
	Orders   map[int64][]domain.Order
	Err      error
}

func (m *MockSource) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.StopList, nil
}

func (m *MockSource) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Orders[customerID], nil
}
