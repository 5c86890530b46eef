package services

import (
	"context"
	"log"
	"sync"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/geo"
	"scenic-route-service/internal/ports"
)

const discoveryConcurrency = 5

// DiscoveryService queries a POI source around each meso-point and merges the
// results into one deduplicated pool.
type DiscoveryService struct {
	Source       ports.POISource
	RadiusMeters int
}

func NewDiscoveryService(source ports.POISource, radiusMeters int) *DiscoveryService {
	return &DiscoveryService{Source: source, RadiusMeters: radiusMeters}
}

// Discover fans out one search per location with bounded concurrency and
// merges the results in location order.
//
// Dedup key is the POI's external id; on collision the instance already in
// the pool is kept (first-seen wins), so query order decides only which
// duplicate's tag set survives, never identity. POIs without an id or a
// valid coordinate are discarded: discovery is best-effort enrichment, not a
// hard contract. A failing location contributes zero POIs and never aborts
// the others.
func (s *DiscoveryService) Discover(
	ctx context.Context,
	locations []domain.Coordinate,
	searchTypes []string,
) []domain.POI {
	if len(locations) == 0 {
		return []domain.POI{}
	}

	perLocation := make([][]domain.POI, len(locations))

	sem := make(chan struct{}, discoveryConcurrency)
	var wg sync.WaitGroup

	for i, loc := range locations {
		wg.Add(1)
		go func(i int, loc domain.Coordinate) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			pois, err := s.Source.Search(ctx, loc, s.RadiusMeters, searchTypes)
			if err != nil {
				log.Printf("poi discovery: search near lat=%.4f lon=%.4f failed: %v", loc.Lat, loc.Lon, err)
				return
			}
			perLocation[i] = pois
		}(i, loc)
	}

	wg.Wait()

	seen := make(map[string]struct{})
	pool := []domain.POI{}

	for i, pois := range perLocation {
		for _, poi := range pois {
			if poi.ID == "" || !poi.Coordinate.Valid() {
				continue
			}
			if _, ok := seen[poi.ID]; ok {
				continue
			}
			seen[poi.ID] = struct{}{}

			poi.DistanceFromRouteKm = geo.Distance(locations[i], poi.Coordinate) / 1000
			pool = append(pool, poi)
		}
	}

	return pool
}
