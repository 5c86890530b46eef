package poi

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

const defaultSearchTTL = 24 * time.Hour

// CachedSource wraps a POISource with a read-through cache. Map data changes
// slowly, so identical searches within the TTL are served from cache. Cache
// failures are logged and degrade to the underlying source.
type CachedSource struct {
	Source ports.POISource
	Cache  ports.POICache
	TTL    time.Duration
}

func NewCachedSource(source ports.POISource, cache ports.POICache) *CachedSource {
	return &CachedSource{Source: source, Cache: cache, TTL: defaultSearchTTL}
}

func (c *CachedSource) Search(
	ctx context.Context,
	location domain.Coordinate,
	radiusMeters int,
	searchTypes []string,
) ([]domain.POI, error) {
	key := searchKey(location, radiusMeters, searchTypes)

	if c.Cache != nil {
		pois, found, err := c.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("poi cache read failed: %v", err)
		} else if found {
			return pois, nil
		}
	}

	pois, err := c.Source.Search(ctx, location, radiusMeters, searchTypes)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, key, pois, c.TTL); err != nil {
			log.Printf("poi cache write failed: %v", err)
		}
	}

	return pois, nil
}

// searchKey derives a stable cache key. Five decimal places is about one
// meter of precision, enough to collapse repeated searches around the same
// sampled point.
func searchKey(location domain.Coordinate, radiusMeters int, searchTypes []string) string {
	return fmt.Sprintf(
		"poi:%.5f,%.5f:%d:%s",
		location.Lat, location.Lon, radiusMeters, strings.Join(searchTypes, ","),
	)
}
