package handlers

import (
	"fmt"
	"net/http"

	"scenic-route-service/internal/api/dto"
	"scenic-route-service/internal/ports"
	"scenic-route-service/internal/services"
)

// PlanHandler runs the planning pipeline: route the trip, discover POIs
// along it, and rank golden clusters.
type PlanHandler struct {
	Planner  *services.Planner
	Geocoder ports.Geocoder
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start, err := resolveLocation(r.Context(), h.Geocoder, req.Start)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("start: %v", err))
		return
	}
	end, err := resolveLocation(r.Context(), h.Geocoder, req.End)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("end: %v", err))
		return
	}

	draft := h.Planner.PlanTrip(r.Context(), start, end, req.Vibes)

	writeJSON(w, r, http.StatusOK, dto.PlanTripResponse{
		Route:    draft.Route,
		POIs:     draft.POIs,
		Clusters: draft.Clusters,
	})
}
