package domain

import "strconv"

// Order lifecycle statuses as the backend reports them.
const (
	OrderReceived  = "RECEIVED"
	OrderAssigned  = "ASSIGNED"
	OrderAccepted  = "ACCEPTED"
	OrderCancelled = "CANCELLED"
	OrderRejected  = "REJECTED"
	OrderAbandoned = "ABANDONED"
	OrderRefused   = "REFUSED"
	OrderPickedUp  = "PICKEDUP"
	OrderCompleted = "COMPLETED"
)

// Leg statuses.
const (
	LegPlanned   = "PLANNED"
	LegAssigned  = "ASSIGNED"
	LegAccepted  = "ACCEPTED"
	LegRejected  = "REJECTED"
	LegAbandoned = "ABANDONED"
	LegStarted   = "STARTED"
	LegCompleted = "COMPLETED"
)

// Route statuses. RouteCompleted is terminal: completed routes are
// never projected.
const (
	RouteAssigned  = "ASSIGNED"
	RouteAccepted  = "ACCEPTED"
	RouteRejected  = "REJECTED"
	RouteAbandoned = "ABANDONED"
	RouteStarted   = "STARTED"
	RouteCompleted = "COMPLETED"
)

// Cab is the vehicle assigned to a route.
type Cab struct {
	ID       int64
	Location int64
	Name     string
	Status   string
}

// Label returns the cab's display name, falling back to its numeric id
// when the backend has not assigned a name. Empty when there is no cab.
func (c Cab) Label() string {
	if c.Name != "" {
		return c.Name
	}
	if c.ID > 0 {
		return strconv.FormatInt(c.ID, 10)
	}
	return ""
}

// Leg is one directed travel segment between two stops within a shared
// route. Distance is in the backend's minutes-or-km unit; zero means
// "unmeasured". Legs are owned by exactly one route and are immutable
// once received.
type Leg struct {
	ID        int64
	FromStand int64
	ToStand   int64
	Distance  int
	Place     int
	Status    string
	Started   string
	Completed string
}

// Route is an ordered chain of legs, potentially serving several
// customers' orders concurrently.
type Route struct {
	ID     int64
	Status string
	Cab    Cab
	Legs   []Leg
}

// Order is one customer's ride request. Several orders may reference
// the same route with distinct boarding/alighting stands. Timing
// fields carry the backend's raw textual timestamps; empty means
// absent. Eta below zero means "no ETA yet".
type Order struct {
	ID            int64
	Status        string
	FromStand     int64
	ToStand       int64
	MaxWait       int
	MaxLoss       int
	Shared        bool
	InPool        bool
	Eta           int
	ReceivedTime  string
	StartedTime   string
	CompletedTime string
	AtTime        string
	Cab           *Cab
	Leg           *Leg
	Route         *Route
}
