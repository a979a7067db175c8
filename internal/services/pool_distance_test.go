package services

import (
	"errors"
	"ride-view-service/internal/domain"
	"testing"
)

func TestPoolDistanceSharedRoute(t *testing.T) {
	order := domain.Order{Status: domain.OrderAssigned, FromStand: 10, ToStand: 30, Route: sharedRoute()}

	// 5+1 for the boarding leg, 1+1 for the unmeasured second leg,
	// minus the dwell unit handed back at the alighting stand.
	got, err := PoolDistance(order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("distance = %d, want 7", got)
	}
}

func TestPoolDistanceSingleLeg(t *testing.T) {
	route := &domain.Route{
		Status: domain.RouteStarted,
		Legs:   []domain.Leg{{FromStand: 10, ToStand: 30, Distance: 4}},
	}
	order := domain.Order{FromStand: 10, ToStand: 30, Route: route}

	got, err := PoolDistance(order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Fatalf("distance = %d, want 4", got)
	}
}

func TestPoolDistanceRepeatedOriginNotCounted(t *testing.T) {
	// Two consecutive legs departing the same stand share one dwell.
	route := &domain.Route{
		Status: domain.RouteStarted,
		Legs: []domain.Leg{
			{FromStand: 10, ToStand: 20, Distance: 5},
			{FromStand: 20, ToStand: 20, Distance: 3},
			{FromStand: 20, ToStand: 30, Distance: 2},
		},
	}
	order := domain.Order{FromStand: 10, ToStand: 30, Route: route}

	got, err := PoolDistance(order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (5+1) + (3+1) + skipped repeat - 1
	if got != 9 {
		t.Fatalf("distance = %d, want 9", got)
	}
}

func TestPoolDistanceNoRouteData(t *testing.T) {
	cases := []struct {
		name  string
		order domain.Order
	}{
		{"no route", domain.Order{FromStand: 10, ToStand: 30}},
		{"route without legs", domain.Order{FromStand: 10, ToStand: 30, Route: &domain.Route{Status: domain.RouteStarted}}},
	}
	for _, tc := range cases {
		if _, err := PoolDistance(tc.order); !errors.Is(err, ErrNoRouteData) {
			t.Errorf("%s: err = %v, want ErrNoRouteData", tc.name, err)
		}
	}
}

func TestPoolDistanceAlightingNotFound(t *testing.T) {
	order := domain.Order{FromStand: 10, ToStand: 99, Route: sharedRoute()}

	if _, err := PoolDistance(order); !errors.Is(err, ErrAlightingNotFound) {
		t.Fatalf("err = %v, want ErrAlightingNotFound", err)
	}
}
