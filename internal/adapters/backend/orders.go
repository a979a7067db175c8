package backend

import (
	"context"
	"fmt"
	"ride-view-service/internal/domain"
	"ride-view-service/internal/platform/obs"
)

type cabRecord struct {
	ID       int64  `json:"id"`
	Location flexID `json:"location"`
	Name     string `json:"name"`
	Status   string `json:"status"`
}

func (r cabRecord) toDomain() domain.Cab {
	return domain.Cab{
		ID:       r.ID,
		Location: int64(r.Location),
		Name:     r.Name,
		Status:   r.Status,
	}
}

type legRecord struct {
	ID        int64  `json:"id"`
	FromStand flexID `json:"fromStand"`
	ToStand   flexID `json:"toStand"`
	Distance  int    `json:"distance"`
	Place     int    `json:"place"`
	Status    string `json:"status"`
	Started   string `json:"started"`
	Completed string `json:"completed"`
}

func (r legRecord) toDomain() domain.Leg {
	return domain.Leg{
		ID:        r.ID,
		FromStand: int64(r.FromStand),
		ToStand:   int64(r.ToStand),
		Distance:  r.Distance,
		Place:     r.Place,
		Status:    r.Status,
		Started:   r.Started,
		Completed: r.Completed,
	}
}

type routeRecord struct {
	ID     int64       `json:"id"`
	Status string      `json:"status"`
	Cab    cabRecord   `json:"cab"`
	Legs   []legRecord `json:"legs"`
}

func (r routeRecord) toDomain() domain.Route {
	route := domain.Route{
		ID:     r.ID,
		Status: r.Status,
		Cab:    r.Cab.toDomain(),
		Legs:   make([]domain.Leg, 0, len(r.Legs)),
	}
	for _, l := range r.Legs {
		route.Legs = append(route.Legs, l.toDomain())
	}
	return route
}

type orderRecord struct {
	ID            int64        `json:"id"`
	Status        string       `json:"status"`
	FromStand     flexID       `json:"fromStand"`
	ToStand       flexID       `json:"toStand"`
	MaxWait       int          `json:"maxWait"`
	MaxLoss       int          `json:"maxLoss"`
	Shared        bool         `json:"shared"`
	InPool        bool         `json:"inPool"`
	Eta           int          `json:"eta"`
	ReceivedTime  string       `json:"receivedTime"`
	StartedTime   string       `json:"startedTime"`
	CompletedTime string       `json:"completedTime"`
	AtTime        string       `json:"atTime"`
	Cab           *cabRecord   `json:"cab"`
	Leg           *legRecord   `json:"leg"`
	Route         *routeRecord `json:"route"`
}

func (r orderRecord) toDomain() domain.Order {
	o := domain.Order{
		ID:            r.ID,
		Status:        r.Status,
		FromStand:     int64(r.FromStand),
		ToStand:       int64(r.ToStand),
		MaxWait:       r.MaxWait,
		MaxLoss:       r.MaxLoss,
		Shared:        r.Shared,
		InPool:        r.InPool,
		Eta:           r.Eta,
		ReceivedTime:  r.ReceivedTime,
		StartedTime:   r.StartedTime,
		CompletedTime: r.CompletedTime,
		AtTime:        r.AtTime,
	}
	if r.Cab != nil {
		cab := r.Cab.toDomain()
		o.Cab = &cab
	}
	if r.Leg != nil {
		leg := r.Leg.toDomain()
		o.Leg = &leg
	}
	if r.Route != nil {
		route := r.Route.toDomain()
		o.Route = &route
	}
	return o
}

// ListOrders fetches one customer's current order snapshot, nested
// routes and legs included. The caller owns projection; records come
// back in the backend's order.
func (c *Client) ListOrders(ctx context.Context, customerID int64) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "backend.ListOrders")(&err)

	var records []orderRecord
	if err := c.get(ctx, "/orders", customerID, &records); err != nil {
		return nil, fmt.Errorf("list orders: customer %d: %w", customerID, err)
	}

	orders := make([]domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.toDomain())
	}
	return orders, nil
}
