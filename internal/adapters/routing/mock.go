package routing

import (
	"context"

	"scenic-route-service/internal/domain"
)

// MockProvider returns a fixed route or error. Used in tests.
type MockProvider struct {
	RouteResult *domain.Route
	Err         error
}

func (m *MockProvider) Route(
	_ context.Context,
	_, _ domain.Coordinate,
	_ []domain.Coordinate,
) (*domain.Route, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.RouteResult, nil
}
