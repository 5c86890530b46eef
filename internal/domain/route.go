package domain

// Route is an ordered polyline with total duration and distance, produced
// once per planning request by a RouteProvider and read-only afterward.
type Route struct {
	Polyline        []Coordinate `json:"polyline"`
	DurationSeconds float64      `json:"duration_seconds"`
	DistanceMeters  float64      `json:"distance_meters"`
}

// Empty reports whether the route carries no usable geometry.
func (r Route) Empty() bool {
	return len(r.Polyline) == 0
}

// TripDraft is the output of the planning pipeline: the macro route, the
// deduplicated POI pool discovered along it, and the ranked clusters.
// A draft with an empty route means routing failed; the caller decides how
// to surface that.
type TripDraft struct {
	Route    Route           `json:"route"`
	POIs     []POI           `json:"pois"`
	Clusters []GoldenCluster `json:"clusters"`
}
