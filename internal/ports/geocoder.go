package ports

import (
	"context"

	"scenic-route-service/internal/domain"
)

// GeocodeResult is a resolved free-text location.
type GeocodeResult struct {
	Name       string
	Coordinate domain.Coordinate
}

// Port: forward geocoding for free-text place queries. A nil result with a
// nil error means the query resolved to nothing; absence of data is normal
// here, not an error.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}
