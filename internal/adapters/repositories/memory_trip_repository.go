package repositories

import (
	"context"
	"sort"
	"sync"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

// In-memory implementation of the TripRepository port. Used when no database
// is configured and in tests. Plans are deep-copied on the way in and out so
// callers can never mutate stored state by aliasing.
type MemoryTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.TripPlan
}

func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{trips: make(map[string]*domain.TripPlan)}
}

func (r *MemoryTripRepository) Create(_ context.Context, plan *domain.TripPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips[plan.ID] = plan.Clone()
	return nil
}

func (r *MemoryTripRepository) Get(_ context.Context, id string) (*domain.TripPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.trips[id]
	if !ok {
		return nil, ports.ErrTripNotFound
	}
	return plan.Clone(), nil
}

func (r *MemoryTripRepository) Update(_ context.Context, plan *domain.TripPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[plan.ID]; !ok {
		return ports.ErrTripNotFound
	}
	r.trips[plan.ID] = plan.Clone()
	return nil
}

func (r *MemoryTripRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return ports.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

func (r *MemoryTripRepository) List(_ context.Context, filter ports.TripFilter) ([]*domain.TripPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.TripPlan, 0, len(r.trips))
	for _, plan := range r.trips {
		if filter.Status != "" && plan.Status != filter.Status {
			continue
		}
		out = append(out, plan.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
