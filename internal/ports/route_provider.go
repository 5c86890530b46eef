package ports

import (
	"context"

	"scenic-route-service/internal/domain"
)

// Contract for computing a driving route between two locations.
type RouteProvider interface {
	// Route returns the polyline, duration, and distance between from and to,
	// optionally threading through waypoints in order. A nil route with a nil
	// error means no route could be computed; errors are reserved for
	// transport-level failures. Callers treat both the same way: degrade to
	// an empty result rather than abort.
	Route(ctx context.Context, from, to domain.Coordinate, waypoints []domain.Coordinate) (*domain.Route, error)
}
