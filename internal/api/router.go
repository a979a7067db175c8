package api

import (
	"net/http"

	"ride-view-service/internal/api/handlers"
	"ride-view-service/internal/domain"
	"ride-view-service/internal/ports"
	"ride-view-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(stops *domain.StopIndex, orders ports.OrderSource, policy services.DistancePolicy) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Stops: stops}
	tripHandler := &handlers.TripHandler{
		Stops:  stops,
		Orders: orders,
		Policy: policy,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", stopHandler.List)
	mux.HandleFunc("/trips", tripHandler.List)

	return loggingMiddleware(mux)
}
