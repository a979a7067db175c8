package handlers

import (
	"log"
	"net/http"
	"strconv"

	"ride-view-service/internal/api/dto"
	"ride-view-service/internal/domain"
	"ride-view-service/internal/ports"
	"ride-view-service/internal/services"
)

// TripHandler serves the display-ready projection of one customer's
// orders. Each request fetches a fresh snapshot from the order source
// and re-runs the projection; nothing is accumulated between requests.
type TripHandler struct {
	Stops  *domain.StopIndex
	Orders ports.OrderSource
	Policy services.DistancePolicy
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	custID := int64(0)
	if raw := r.URL.Query().Get("cust_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			writeError(w, r, http.StatusBadRequest, "cust_id must be a non-negative integer")
			return
		}
		custID = id
	}

	orders, err := h.Orders.ListOrders(r.Context(), custID)
	if err != nil {
		log.Printf("list orders failed: cust_id=%d err=%v", custID, err)
		writeError(w, r, http.StatusBadGateway, "order source unavailable")
		return
	}

	projected := services.ProjectOrders(orders, h.Stops, h.Policy)

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(projected))}
	for _, p := range projected {
		legs := make([]dto.TripLegResponse, 0, len(p.Legs))
		for _, l := range p.Legs {
			legs = append(legs, dto.TripLegResponse{
				Stop:     l.Stop,
				Status:   l.Status,
				Distance: l.Distance,
			})
		}

		res.Trips = append(res.Trips, dto.TripResponse{
			OrderID:   p.ID,
			Status:    p.Status,
			From:      p.From,
			To:        p.To,
			MaxWait:   p.MaxWait,
			MaxLoss:   p.MaxLoss,
			Shared:    p.Shared,
			InPool:    p.InPool,
			Received:  p.Received,
			Started:   p.Started,
			Completed: p.Completed,
			AtTime:    p.AtTime,
			Eta:       p.Eta,
			Cab:       p.Cab,
			RouteID:   p.RouteID,
			Distance:  p.Distance,
			Legs:      legs,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
