package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"scenic-route-service/internal/api/dto"
	"scenic-route-service/internal/deeplinks"
	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
	"scenic-route-service/internal/services"
)

// TripHandler exposes trip CRUD and itinerary mutation endpoints. Every
// mutation re-runs the schedule solver so stored trips always carry a
// complete, current timeline.
type TripHandler struct {
	Repo      ports.TripRepository
	Geocoder  ports.Geocoder
	Estimator ports.DriveTimeEstimator
	Routes    ports.RouteProvider
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest
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

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	name := req.Name
	if name == "" {
		name = "Scenic trip"
	}

	now := time.Now().UTC()
	plan := &domain.TripPlan{
		ID:            uuid.NewString(),
		Name:          name,
		StartLocation: start,
		EndLocation:   end,
		Date:          req.Date,
		Vibes:         req.Vibes,
		Status:        domain.TripDraftStatus,
		Stops:         []domain.Stop{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.Repo.Create(r.Context(), plan); err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, tripResponse(plan, []domain.Warning{}))
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ports.TripFilter{
		Status: domain.TripStatus(r.URL.Query().Get("status")),
	}

	trips, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListTripsResponse{Trips: trips})
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(plan, []domain.Warning{}))
}

func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("delete trip %q failed: %v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TripHandler) AddStop(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	var req dto.AddStopRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Coordinate == nil || !req.Coordinate.Valid() {
		writeError(w, r, http.StatusBadRequest, "stop coordinate is required")
		return
	}

	stop := domain.Stop{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Category:        domain.CategoryFromSearchType(req.Category),
		Coordinate:      *req.Coordinate,
		DurationMinutes: req.DurationMinutes,
		IsAnchor:        req.IsAnchor,
		Tags:            req.Tags,
		POIID:           req.POIID,
	}
	if req.PlannedArrival != nil {
		stop.PlannedArrival = *req.PlannedArrival
	}

	at := len(plan.Stops)
	if req.Position != nil {
		at = *req.Position
		if at < 0 {
			at = 0
		}
		if at > len(plan.Stops) {
			at = len(plan.Stops)
		}
	}
	plan.Stops = append(plan.Stops[:at], append([]domain.Stop{stop}, plan.Stops[at:]...)...)

	h.solveAndStore(w, r, plan)
}

func (h *TripHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	stopID := r.PathValue("stopID")

	kept := plan.Stops[:0:0]
	for _, s := range plan.Stops {
		if s.ID != stopID {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(plan.Stops) {
		writeError(w, r, http.StatusNotFound, "stop not found")
		return
	}
	plan.Stops = kept

	h.solveAndStore(w, r, plan)
}

// Reorder applies an explicit stop order supplied by the client. The ids
// must be a permutation of the trip's current stops.
func (h *TripHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	var req dto.ReorderTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.StopIDs) != len(plan.Stops) {
		writeError(w, r, http.StatusBadRequest, "stop_ids must list every stop exactly once")
		return
	}

	byID := make(map[string]domain.Stop, len(plan.Stops))
	for _, s := range plan.Stops {
		byID[s.ID] = s
	}

	reordered := make([]domain.Stop, 0, len(req.StopIDs))
	for _, id := range req.StopIDs {
		s, ok := byID[id]
		if !ok {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown or duplicate stop id %q", id))
			return
		}
		delete(byID, id)
		reordered = append(reordered, s)
	}
	plan.Stops = reordered

	h.solveAndStore(w, r, plan)
}

// Optimize reorders unanchored stops with the greedy nearest-neighbor pass,
// then re-solves.
func (h *TripHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	h.solveAndStore(w, r, services.Reorder(plan, h.Estimator))
}

// Recalculate refreshes the route geometry through the current stops, then
// re-runs the solver. A routing failure keeps the stored geometry; the
// schedule is still recomputed.
func (h *TripHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadTrip(w, r)
	if !ok {
		return
	}

	if h.Routes != nil {
		waypoints := make([]domain.Coordinate, 0, len(plan.Stops))
		for _, s := range plan.Stops {
			if s.Skipped {
				continue
			}
			waypoints = append(waypoints, s.Coordinate)
		}

		route, err := h.Routes.Route(r.Context(), plan.StartLocation, plan.EndLocation, waypoints)
		if err != nil {
			log.Printf("recalculate trip %q: route refresh failed: %v", plan.ID, err)
		} else if route != nil && !route.Empty() {
			plan.Route = *route
		}
	}

	h.solveAndStore(w, r, plan)
}

func (h *TripHandler) loadTrip(w http.ResponseWriter, r *http.Request) (*domain.TripPlan, bool) {
	id := r.PathValue("id")

	plan, err := h.Repo.Get(r.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return nil, false
	}
	if err != nil {
		log.Printf("get trip %q failed: %v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return plan, true
}

func (h *TripHandler) solveAndStore(w http.ResponseWriter, r *http.Request, plan *domain.TripPlan) {
	solved, warnings := services.Solve(plan, services.SolveOptions{Estimator: h.Estimator})
	solved.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Update(r.Context(), solved); err != nil {
		log.Printf("update trip %q failed: %v", solved.ID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(solved, warnings))
}

func tripResponse(plan *domain.TripPlan, warnings []domain.Warning) dto.TripResponse {
	waypoints := make([]domain.Coordinate, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		if s.Skipped {
			continue
		}
		waypoints = append(waypoints, s.Coordinate)
	}

	return dto.TripResponse{
		Trip:     plan,
		Warnings: warnings,
		Links:    deeplinks.ForItinerary(plan.EndLocation, waypoints),
	}
}

func resolveLocation(ctx context.Context, g ports.Geocoder, in dto.LocationInput) (domain.Coordinate, error) {
	if in.Coordinate != nil {
		if !in.Coordinate.Valid() {
			return domain.Coordinate{}, errors.New("coordinate out of range")
		}
		return *in.Coordinate, nil
	}

	if in.Query == "" {
		return domain.Coordinate{}, errors.New("coordinate or query is required")
	}
	if g == nil {
		return domain.Coordinate{}, errors.New("free-text locations are not supported")
	}

	result, err := g.Geocode(ctx, in.Query)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", in.Query, err)
	}
	if result == nil {
		return domain.Coordinate{}, fmt.Errorf("location %q not found", in.Query)
	}

	return result.Coordinate, nil
}
