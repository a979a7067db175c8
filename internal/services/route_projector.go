package services

import (
	"fmt"
	"ride-view-service/internal/domain"
)

// DistancePolicy selects how travel distance is attributed to the
// projected stop rows. Two attribution conventions exist among the
// consumers of this projection; neither is canonical, so the choice is
// an explicit parameter rather than a hard-coded behavior.
type DistancePolicy int

const (
	// DistanceOnNextStop gives the boarding stop a zero-distance row and
	// attaches each leg's travel distance to the row of the stop the leg
	// arrives at.
	DistanceOnNextStop DistancePolicy = iota
	// DistanceZeroed gives every intermediate stop a zero distance; only
	// the alighting row carries the final leg's distance.
	DistanceZeroed
)

// ParseDistancePolicy maps a configuration value to a DistancePolicy.
// An empty value selects DistanceOnNextStop.
func ParseDistancePolicy(s string) (DistancePolicy, error) {
	switch s {
	case "", "next-stop":
		return DistanceOnNextStop, nil
	case "zeroed":
		return DistanceZeroed, nil
	}
	return 0, fmt.Errorf("parse distance policy: unknown value %q", s)
}

// The projection is a single forward pass over the route's legs.
type walkState int

const (
	seekingStart walkState = iota
	collecting
	walkDone
)

// ProjectLegs extracts the ordered subsequence of route legs relevant to
// this customer: one row per stop from the boarding stand to the
// alighting stand, each resolved to a display name, narrated and
// annotated with a distance according to policy.
//
// Collection starts at the first leg whose origin equals the order's
// boarding stand and stops at the first leg whose destination equals the
// alighting stand; remaining legs are not scanned. A boarding stand that
// never appears yields an empty projection, as does a missing or
// completed route or a refused order. None of these are errors: the
// input comes from an eventually-consistent backend and inconsistent
// snapshots are routine.
func ProjectLegs(order domain.Order, stops *domain.StopIndex, policy DistancePolicy) []domain.ProjectedLeg {
	if order.Status == domain.OrderRefused {
		return []domain.ProjectedLeg{}
	}
	if order.Route == nil || order.Route.Status == domain.RouteCompleted {
		return []domain.ProjectedLeg{}
	}

	rows := []domain.ProjectedLeg{}
	state := seekingStart
	pending := 0

	for _, leg := range order.Route.Legs {
		switch state {
		case seekingStart:
			if leg.FromStand == order.FromStand {
				// Once collection starts it never restarts; a second
				// occurrence of the boarding stand is just another stop.
				state = collecting
				rows = append(rows, stopRow(stops, leg.FromStand, leg.Status, 0))
				pending = atLeastOne(leg.Distance)
			}

		case collecting:
			d := 0
			if policy == DistanceOnNextStop {
				d = pending
			}
			rows = append(rows, stopRow(stops, leg.FromStand, leg.Status, d))
			pending = atLeastOne(leg.Distance)
		}

		if leg.ToStand == order.ToStand {
			if state == collecting {
				rows = append(rows, stopRow(stops, leg.ToStand, leg.Status, atLeastOne(leg.Distance)))
			}
			state = walkDone
			break
		}
	}

	return rows
}

func stopRow(stops *domain.StopIndex, id int64, legStatus string, distance int) domain.ProjectedLeg {
	return domain.ProjectedLeg{
		Stop:     stops.Name(id),
		Status:   NarrateLegStatus(legStatus),
		Distance: distance,
	}
}

// Unmeasured legs count as one unit, matching the backend's
// "at least one minute" convention.
func atLeastOne(d int) int {
	if d == 0 {
		return 1
	}
	return d
}
