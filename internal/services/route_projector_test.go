package services

import (
	"reflect"
	"ride-view-service/internal/domain"
	"testing"
)

func testStops() *domain.StopIndex {
	return domain.NewStopIndex([]domain.Stop{
		{ID: 10, Name: "A"},
		{ID: 20, Name: "B"},
		{ID: 30, Name: "C"},
		{ID: 40, Name: "D"},
	})
}

func sharedRoute() *domain.Route {
	return &domain.Route{
		ID:     900,
		Status: domain.RouteStarted,
		Legs: []domain.Leg{
			{ID: 1, FromStand: 10, ToStand: 20, Distance: 5, Status: domain.LegAssigned},
			{ID: 2, FromStand: 20, ToStand: 30, Distance: 0, Status: domain.LegAssigned},
		},
	}
}

func TestProjectLegsDistanceOnNextStop(t *testing.T) {
	order := domain.Order{ID: 1, Status: domain.OrderAssigned, FromStand: 10, ToStand: 30, Route: sharedRoute()}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)

	want := []domain.ProjectedLeg{
		{Stop: "A", Status: "", Distance: 0},
		{Stop: "B", Status: "", Distance: 5},
		{Stop: "C", Status: "", Distance: 1}, // unmeasured final leg counts as one unit
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
}

func TestProjectLegsDistanceZeroed(t *testing.T) {
	order := domain.Order{ID: 1, Status: domain.OrderAssigned, FromStand: 10, ToStand: 30, Route: sharedRoute()}

	rows := ProjectLegs(order, testStops(), DistanceZeroed)

	want := []domain.ProjectedLeg{
		{Stop: "A", Status: "", Distance: 0},
		{Stop: "B", Status: "", Distance: 0},
		{Stop: "C", Status: "", Distance: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
}

func TestProjectLegsStartsMidRoute(t *testing.T) {
	// A co-rider boards at the second stop of a longer shared route.
	route := &domain.Route{
		Status: domain.RouteStarted,
		Legs: []domain.Leg{
			{FromStand: 40, ToStand: 10, Distance: 3, Status: domain.LegCompleted},
			{FromStand: 10, ToStand: 20, Distance: 5, Status: domain.LegStarted},
			{FromStand: 20, ToStand: 30, Distance: 2, Status: domain.LegAssigned},
		},
	}
	order := domain.Order{Status: domain.OrderPickedUp, FromStand: 10, ToStand: 30, Route: route}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)

	want := []domain.ProjectedLeg{
		{Stop: "A", Status: "left behind", Distance: 0},
		{Stop: "B", Status: "", Distance: 5},
		{Stop: "C", Status: "", Distance: 2},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
}

func TestProjectLegsStopsAtAlightingStand(t *testing.T) {
	// Legs past the customer's alighting stand belong to co-riders and
	// must not be scanned.
	route := &domain.Route{
		Status: domain.RouteStarted,
		Legs: []domain.Leg{
			{FromStand: 10, ToStand: 20, Distance: 5, Status: domain.LegAssigned},
			{FromStand: 20, ToStand: 30, Distance: 4, Status: domain.LegAssigned},
			{FromStand: 30, ToStand: 40, Distance: 9, Status: domain.LegAssigned},
		},
	}
	order := domain.Order{Status: domain.OrderAssigned, FromStand: 10, ToStand: 30, Route: route}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[2].Stop != "C" || rows[2].Distance != 4 {
		t.Fatalf("last row = %+v, want stop C with distance 4", rows[2])
	}
}

func TestProjectLegsBoardingStandMissing(t *testing.T) {
	order := domain.Order{Status: domain.OrderAssigned, FromStand: 99, ToStand: 30, Route: sharedRoute()}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)
	if len(rows) != 0 {
		t.Fatalf("expected no rows for a boarding stand absent from the route, got %+v", rows)
	}
}

func TestProjectLegsAlightingStandMissing(t *testing.T) {
	// The walk exhausts the route and returns what it accumulated.
	order := domain.Order{Status: domain.OrderAssigned, FromStand: 10, ToStand: 99, Route: sharedRoute()}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)

	want := []domain.ProjectedLeg{
		{Stop: "A", Status: "", Distance: 0},
		{Stop: "B", Status: "", Distance: 5},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
}

func TestProjectLegsExcluded(t *testing.T) {
	completed := sharedRoute()
	completed.Status = domain.RouteCompleted

	cases := []struct {
		name  string
		order domain.Order
	}{
		{"no route", domain.Order{Status: domain.OrderAssigned, FromStand: 10, ToStand: 30}},
		{"completed route", domain.Order{Status: domain.OrderAssigned, FromStand: 10, ToStand: 30, Route: completed}},
		{"refused order", domain.Order{Status: domain.OrderRefused, FromStand: 10, ToStand: 30, Route: sharedRoute()}},
	}
	for _, tc := range cases {
		if rows := ProjectLegs(tc.order, testStops(), DistanceOnNextStop); len(rows) != 0 {
			t.Errorf("%s: expected empty projection, got %+v", tc.name, rows)
		}
	}
}

func TestProjectLegsUnknownStopName(t *testing.T) {
	route := &domain.Route{
		Status: domain.RouteStarted,
		Legs:   []domain.Leg{{FromStand: 77, ToStand: 30, Distance: 2, Status: domain.LegAssigned}},
	}
	order := domain.Order{Status: domain.OrderAssigned, FromStand: 77, ToStand: 30, Route: route}

	rows := ProjectLegs(order, testStops(), DistanceOnNextStop)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].Stop != domain.UnknownStopName {
		t.Fatalf("unknown stand resolved to %q, want %q", rows[0].Stop, domain.UnknownStopName)
	}
}

func TestParseDistancePolicy(t *testing.T) {
	if p, err := ParseDistancePolicy(""); err != nil || p != DistanceOnNextStop {
		t.Fatalf("empty value: got %v, %v", p, err)
	}
	if p, err := ParseDistancePolicy("zeroed"); err != nil || p != DistanceZeroed {
		t.Fatalf("zeroed: got %v, %v", p, err)
	}
	if _, err := ParseDistancePolicy("bogus"); err == nil {
		t.Fatal("expected error for unknown policy name")
	}
}
