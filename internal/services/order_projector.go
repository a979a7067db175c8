package services

import "ride-view-service/internal/domain"

// WaitingForCab is shown in place of a vehicle name while no cab has
// been assigned to the order's route.
const WaitingForCab = "waiting for assignment"

// ProjectOrders is the batch entry point: it derives a display-ready
// view for each order in the snapshot, preserving the input order.
// Refused orders are omitted outright. Orders without a route (or with
// a completed one) keep their summary row but project no legs, so a
// customer still sees a request that is waiting for assignment.
//
// The projection is a pure function of its inputs: re-running it over
// the same snapshot and directory yields a structurally identical
// result.
func ProjectOrders(orders []domain.Order, stops *domain.StopIndex, policy DistancePolicy) []domain.ProjectedOrder {
	out := make([]domain.ProjectedOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.OrderRefused {
			continue
		}
		out = append(out, projectOrder(o, stops, policy))
	}
	return out
}

func projectOrder(o domain.Order, stops *domain.StopIndex, policy DistancePolicy) domain.ProjectedOrder {
	p := domain.ProjectedOrder{
		ID:        o.ID,
		Status:    o.Status,
		From:      stops.Name(o.FromStand),
		To:        stops.Name(o.ToStand),
		MaxWait:   o.MaxWait,
		MaxLoss:   o.MaxLoss,
		Shared:    o.Shared,
		InPool:    o.InPool,
		Received:  FormatTimestamp(o.ReceivedTime),
		Started:   FormatTimestamp(o.StartedTime),
		Completed: FormatTimestamp(o.CompletedTime),
		AtTime:    FormatTimestamp(o.AtTime),
		Cab:       WaitingForCab,
	}

	// A negative ETA means the backend has not estimated one yet.
	if o.Eta >= 0 {
		eta := o.Eta
		p.Eta = &eta
	}

	if o.Route != nil {
		p.RouteID = o.Route.ID
		if label := o.Route.Cab.Label(); label != "" {
			p.Cab = label
		}
	}

	if d, err := PoolDistance(o); err == nil {
		dist := d
		p.Distance = &dist
	}

	p.Legs = ProjectLegs(o, stops, policy)
	return p
}
