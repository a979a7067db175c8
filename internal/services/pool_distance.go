package services

import (
	"errors"
	"ride-view-service/internal/domain"
)

// Named failure reasons for PoolDistance. Both signal data
// inconsistency in the polled snapshot, not faults: callers decide
// whether to log or to show the trip without an estimate.
var (
	// ErrNoRouteData: the order has no route, or the route has no legs.
	ErrNoRouteData = errors.New("pool distance: no route data")
	// ErrAlightingNotFound: the walk exhausted the route without ever
	// reaching the customer's alighting stand.
	ErrAlightingNotFound = errors.New("pool distance: alighting stop not on route")
)

// PoolDistance estimates the in-pool travel time attributable to this
// customer's segment of a (possibly shared) route.
//
// Each counted leg contributes its distance (unmeasured legs count as
// one) plus one dwell unit for stopping at its origin stand. Counting
// starts at the first leg departing the customer's boarding stand. A
// later leg departing the same stand as its predecessor has no extra
// dwell, so it is not counted again. The walk ends at the first leg
// arriving at the alighting stand; the trip ends there, so that stand's
// dwell unit is handed back.
func PoolDistance(order domain.Order) (int, error) {
	if order.Route == nil || len(order.Route.Legs) == 0 {
		return 0, ErrNoRouteData
	}

	legs := order.Route.Legs
	sum := 0
	found := false

	for i, leg := range legs {
		switch {
		case !found && leg.FromStand == order.FromStand:
			found = true
			sum += atLeastOne(leg.Distance) + 1
		case found && leg.FromStand != legs[i-1].FromStand:
			sum += atLeastOne(leg.Distance) + 1
		}
		if found && leg.ToStand == order.ToStand {
			return sum - 1, nil
		}
	}

	return 0, ErrAlightingNotFound
}
