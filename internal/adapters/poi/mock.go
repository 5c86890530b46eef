package poi

import (
	"context"
	"sync"

	"scenic-route-service/internal/domain"
)

// MockSource serves canned POIs per search location. Used in tests.
type MockSource struct {
	ByLocation map[domain.Coordinate][]domain.POI
	Errs       map[domain.Coordinate]error

	mu    sync.Mutex
	calls []domain.Coordinate
}

func NewMockSource(byLocation map[domain.Coordinate][]domain.POI) *MockSource {
	return &MockSource{ByLocation: byLocation}
}

func (m *MockSource) Search(
	_ context.Context,
	location domain.Coordinate,
	_ int,
	_ []string,
) ([]domain.POI, error) {
	m.mu.Lock()
	m.calls = append(m.calls, location)
	m.mu.Unlock()

	if err := m.Errs[location]; err != nil {
		return nil, err
	}
	return m.ByLocation[location], nil
}

// Calls returns a copy of the locations searched so far, in call order.
// Order is nondeterministic when searches run concurrently.
func (m *MockSource) Calls() []domain.Coordinate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Coordinate, len(m.calls))
	copy(out, m.calls)
	return out
}
