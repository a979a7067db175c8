package ports

import (
	"context"
	"ride-view-service/internal/domain"
)

// Port: a session-startup cache for the stop directory, so a restart
// does not depend on the backend being reachable. The cached list is
// replaced wholesale, never mutated in place.
type StopCache interface {
	// Return the cached stop list; empty (not an error) on a miss.
	GetAll(ctx context.Context) ([]domain.Stop, error)
	// Replace the cached stop list.
	PutAll(ctx context.Context, stops []domain.Stop) error
}
