package ports

import (
	"context"

	"scenic-route-service/internal/domain"
)

// Contract for searching points of interest near a location.
//
// searchTypes are raw map-data types (e.g. "viewpoint", "cafe", "peak");
// the source maps them to its own tag vocabulary. An empty result is not
// distinguished from upstream failure at this boundary: both mean "nothing
// found here" and the aggregation layer carries on.
type POISource interface {
	Search(ctx context.Context, location domain.Coordinate, radiusMeters int, searchTypes []string) ([]domain.POI, error)
}
