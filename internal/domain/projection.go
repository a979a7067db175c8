package domain

// ProjectedLeg is one display-ready row of a customer's trip: the stop's
// display name, a narrated progress phrase and the travel distance
// attributed to reaching that stop.
type ProjectedLeg struct {
	Stop     string
	Status   string
	Distance int
}

// ProjectedOrder is the display-ready view of one order and the
// subsequence of its route relevant to this customer. It is derived
// data: recomputed fresh from each backend snapshot, never mutated in
// place, and discarded on the next refresh.
//
// Eta is nil when the backend has not produced an estimate yet.
// Distance is nil when the pooled distance could not be derived from
// the route data.
type ProjectedOrder struct {
	ID        int64
	Status    string
	From      string
	To        string
	MaxWait   int
	MaxLoss   int
	Shared    bool
	InPool    bool
	Received  string
	Started   string
	Completed string
	AtTime    string
	Eta       *int
	Cab       string
	RouteID   int64
	Distance  *int
	Legs      []ProjectedLeg
}
