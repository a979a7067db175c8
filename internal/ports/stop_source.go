package ports

import (
	"context"
	"ride-view-service/internal/domain"
)

// Contract for retrieving the stop directory from its origin (the
// backend API or a local snapshot).
type StopSource interface {
	// Return every stop known to the system.
	ListStops(ctx context.Context) ([]domain.Stop, error)
}
