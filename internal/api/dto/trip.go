package dto

import (
	"time"

	"scenic-route-service/internal/deeplinks"
	"scenic-route-service/internal/domain"
)

// LocationInput is either an explicit coordinate or a free-text query to
// geocode. Coordinate wins when both are set.
type LocationInput struct {
	Coordinate *domain.Coordinate `json:"coordinate"`
	Query      string             `json:"query"`
}

type CreateTripRequest struct {
	Name  string        `json:"name"`
	Start LocationInput `json:"start"`
	End   LocationInput `json:"end"`
	Date  string        `json:"date"`
	Vibes []string      `json:"vibes"`
}

// AddStopRequest inserts a stop at Position (clamped; nil appends).
type AddStopRequest struct {
	Name            string             `json:"name"`
	Position        *int               `json:"position"`
	Category        string             `json:"category"`
	Coordinate      *domain.Coordinate `json:"coordinate"`
	POIID           string             `json:"poi_id"`
	DurationMinutes int                `json:"duration_minutes"`
	IsAnchor        bool               `json:"is_anchor"`
	PlannedArrival  *time.Time         `json:"planned_arrival"`
	Tags            map[string]string  `json:"tags"`
}

// ReorderTripRequest carries an explicit stop order: a permutation of the
// trip's current stop ids.
type ReorderTripRequest struct {
	StopIDs []string `json:"stop_ids"`
}

// TripResponse is the common envelope for endpoints that return one trip.
// Warnings come from the most recent solve and are never persisted.
type TripResponse struct {
	Trip     *domain.TripPlan          `json:"trip"`
	Warnings []domain.Warning          `json:"warnings"`
	Links    deeplinks.NavigationLinks `json:"links"`
}

type ListTripsResponse struct {
	Trips []*domain.TripPlan `json:"trips"`
}
