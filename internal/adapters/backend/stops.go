package backend

import (
	"context"
	"fmt"
	"ride-view-service/internal/domain"
	"ride-view-service/internal/platform/obs"
)

type stopRecord struct {
	ID        flexID   `json:"id"`
	No        string   `json:"no"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Bearing   *float64 `json:"bearing"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

func (r stopRecord) toDomain() domain.Stop {
	s := domain.Stop{
		ID:        int64(r.ID),
		No:        r.No,
		Name:      r.Name,
		Type:      r.Type,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
	if r.Bearing != nil {
		s.Bearing = *r.Bearing
	}
	return s
}

// ListStops fetches the full stop directory. The backend serves the
// stop listing to any authenticated customer; customer zero is the
// convention for session bootstrap.
func (c *Client) ListStops(ctx context.Context) (_ []domain.Stop, err error) {
	defer obs.Time(ctx, "backend.ListStops")(&err)

	var records []stopRecord
	if err := c.get(ctx, "/stops", 0, &records); err != nil {
		return nil, fmt.Errorf("list stops: %w", err)
	}

	stops := make([]domain.Stop, 0, len(records))
	for _, r := range records {
		stops = append(stops, r.toDomain())
	}
	return stops, nil
}
