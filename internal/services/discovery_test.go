package services

import (
	"context"
	"errors"
	"testing"

	"scenic-route-service/internal/adapters/poi"
	"scenic-route-service/internal/domain"
)

func TestDiscoverDedupFirstSeenWins(t *testing.T) {
	locA := domain.Coordinate{Lat: 32.0, Lon: 35.0}
	locB := domain.Coordinate{Lat: 32.5, Lon: 35.0}

	shared := domain.POI{
		ID:         "node/1",
		Name:       "Shared Viewpoint",
		Category:   domain.CategoryViewpoint,
		Coordinate: domain.Coordinate{Lat: 32.01, Lon: 35.0},
	}
	renamed := shared
	renamed.Name = "Same Viewpoint, Different Query"

	source := poi.NewMockSource(map[domain.Coordinate][]domain.POI{
		locA: {shared},
		locB: {renamed, {
			ID:         "node/2",
			Name:       "Spring",
			Category:   domain.CategorySpring,
			Coordinate: domain.Coordinate{Lat: 32.51, Lon: 35.0},
		}},
	})

	svc := NewDiscoveryService(source, 3000)
	pool := svc.Discover(context.Background(), []domain.Coordinate{locA, locB}, []string{"viewpoint"})

	if len(pool) != 2 {
		t.Fatalf("expected 2 POIs after dedup, got %d", len(pool))
	}
	if pool[0].ID != "node/1" || pool[0].Name != "Shared Viewpoint" {
		t.Fatalf("first-seen instance should survive, got %+v", pool[0])
	}
	if pool[1].ID != "node/2" {
		t.Fatalf("expected node/2 second, got %q", pool[1].ID)
	}

	if pool[0].DistanceFromRouteKm <= 0 {
		t.Fatalf("distance from route not set: %v", pool[0].DistanceFromRouteKm)
	}
}

func TestDiscoverDropsInvalidPOIs(t *testing.T) {
	loc := domain.Coordinate{Lat: 32.0, Lon: 35.0}

	source := poi.NewMockSource(map[domain.Coordinate][]domain.POI{
		loc: {
			{ID: "", Name: "No ID", Coordinate: loc},
			{ID: "node/1", Name: "Bad Coordinate", Coordinate: domain.Coordinate{Lat: 95, Lon: 35}},
			{ID: "node/2", Name: "Fine", Category: domain.CategoryCafe, Coordinate: domain.Coordinate{Lat: 32.01, Lon: 35.0}},
		},
	})

	svc := NewDiscoveryService(source, 3000)
	pool := svc.Discover(context.Background(), []domain.Coordinate{loc}, []string{"cafe"})

	if len(pool) != 1 {
		t.Fatalf("expected 1 valid POI, got %d", len(pool))
	}
	if pool[0].ID != "node/2" {
		t.Fatalf("expected node/2, got %q", pool[0].ID)
	}
}

func TestDiscoverIsolatesFailingLocation(t *testing.T) {
	locOK := domain.Coordinate{Lat: 32.0, Lon: 35.0}
	locBad := domain.Coordinate{Lat: 33.0, Lon: 35.0}

	source := poi.NewMockSource(map[domain.Coordinate][]domain.POI{
		locOK: {{
			ID:         "node/1",
			Name:       "Viewpoint",
			Category:   domain.CategoryViewpoint,
			Coordinate: domain.Coordinate{Lat: 32.01, Lon: 35.0},
		}},
	})
	source.Errs = map[domain.Coordinate]error{
		locBad: errors.New("overpass: status 504"),
	}

	svc := NewDiscoveryService(source, 3000)
	pool := svc.Discover(context.Background(), []domain.Coordinate{locBad, locOK}, []string{"viewpoint"})

	if len(pool) != 1 {
		t.Fatalf("expected the healthy location's POI, got %d", len(pool))
	}
	if pool[0].ID != "node/1" {
		t.Fatalf("expected node/1, got %q", pool[0].ID)
	}
}

func TestDiscoverNoLocations(t *testing.T) {
	svc := NewDiscoveryService(poi.NewMockSource(nil), 3000)

	pool := svc.Discover(context.Background(), nil, []string{"viewpoint"})
	if pool == nil || len(pool) != 0 {
		t.Fatalf("expected empty pool, got %v", pool)
	}
}
