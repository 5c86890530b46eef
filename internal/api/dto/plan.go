package dto

import "scenic-route-service/internal/domain"

type PlanTripRequest struct {
	Start LocationInput `json:"start"`
	End   LocationInput `json:"end"`
	Vibes []string      `json:"vibes"`
}

// PlanTripResponse is the planning pipeline's draft: route geometry, the POI
// pool found along it, and the ranked golden clusters.
type PlanTripResponse struct {
	Route    domain.Route           `json:"route"`
	POIs     []domain.POI           `json:"pois"`
	Clusters []domain.GoldenCluster `json:"clusters"`
}
