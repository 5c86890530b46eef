package ports

import (
	"context"
	"time"

	"scenic-route-service/internal/domain"
)

// Port: optional cross-call cache for POI search results. Injected as a
// collaborator so the core stays stateless between requests; a nil cache
// simply means every search hits the source.
type POICache interface {
	// Get returns the cached result for a search key, with found=false on miss.
	Get(ctx context.Context, key string) (pois []domain.POI, found bool, err error)
	Put(ctx context.Context, key string, pois []domain.POI, ttl time.Duration) error
}
