package api

import (
	"net/http"

	"scenic-route-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(trips *handlers.TripHandler, plans *handlers.PlanHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /trips", trips.Create)
	mux.HandleFunc("GET /trips", trips.List)
	mux.HandleFunc("POST /trips/plan", plans.Plan)
	mux.HandleFunc("GET /trips/{id}", trips.Get)
	mux.HandleFunc("DELETE /trips/{id}", trips.Delete)

	mux.HandleFunc("POST /trips/{id}/stops", trips.AddStop)
	mux.HandleFunc("DELETE /trips/{id}/stops/{stopID}", trips.RemoveStop)
	mux.HandleFunc("POST /trips/{id}/reorder", trips.Reorder)
	mux.HandleFunc("POST /trips/{id}/optimize", trips.Optimize)
	mux.HandleFunc("POST /trips/{id}/recalculate", trips.Recalculate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
