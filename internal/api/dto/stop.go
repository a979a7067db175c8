package dto

type StopResponse struct {
	ID        int64   `json:"id"`
	No        string  `json:"no"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Bearing   float64 `json:"bearing"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}
