package ports

import (
	"context"
	"errors"

	"scenic-route-service/internal/domain"
)

// ErrTripNotFound is returned by repositories when a trip id does not exist.
var ErrTripNotFound = errors.New("trip not found")

// TripFilter narrows List results. Zero values mean "no filter".
type TripFilter struct {
	Status domain.TripStatus
}

// Port: a boundary for persisting and retrieving trip plans. The solver and
// planner never touch storage; callers load a plan, run the core, and store
// the result back through this port.
type TripRepository interface {
	Create(ctx context.Context, plan *domain.TripPlan) error
	Get(ctx context.Context, id string) (*domain.TripPlan, error)
	Update(ctx context.Context, plan *domain.TripPlan) error
	Delete(ctx context.Context, id string) error
	// List returns trips ordered by most recently updated first.
	List(ctx context.Context, filter TripFilter) ([]*domain.TripPlan, error)
}
