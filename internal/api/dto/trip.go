package dto

type TripLegResponse struct {
	Stop     string `json:"stop"`
	Status   string `json:"status"`
	Distance int    `json:"distance"`
}

type TripResponse struct {
	OrderID   int64             `json:"order_id"`
	Status    string            `json:"status"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	MaxWait   int               `json:"max_wait"`
	MaxLoss   int               `json:"max_loss"`
	Shared    bool              `json:"shared"`
	InPool    bool              `json:"in_pool"`
	Received  string            `json:"received"`
	Started   string            `json:"started"`
	Completed string            `json:"completed"`
	AtTime    string            `json:"at_time"`
	Eta       *int              `json:"eta"`
	Cab       string            `json:"cab"`
	RouteID   int64             `json:"route_id"`
	Distance  *int              `json:"distance"`
	Legs      []TripLegResponse `json:"legs"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
