package handlers

import (
	"net/http"

	"ride-view-service/internal/api/dto"
	"ride-view-service/internal/domain"
)

// StopHandler exposes the loaded stop directory, read-only.
type StopHandler struct {
	Stops *domain.StopIndex
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stops := h.Stops.Stops()
	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			ID:        s.ID,
			No:        s.No,
			Name:      s.Name,
			Type:      s.Type,
			Bearing:   s.Bearing,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
