package services

import (
	"testing"

	"scenic-route-service/internal/domain"
)

// Offsets in degrees of latitude: 0.0015 is roughly 167 m, 0.003 roughly
// 334 m, 0.0045 roughly 500 m.
func poiAt(id string, category domain.POICategory, name string, latOffset float64) domain.POI {
	return domain.POI{
		ID:       id,
		Name:     name,
		Category: category,
		Coordinate: domain.Coordinate{
			Lat: 32.0 + latOffset,
			Lon: 35.0,
		},
	}
}

func TestGoldenScorerBaseScore(t *testing.T) {
	pois := []domain.POI{poiAt("v1", domain.CategoryViewpoint, "", 0)}

	clusters := GoldenScorer{}.Score(pois)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if clusters[0].Score != 50 {
		t.Fatalf("score = %d, want 50", clusters[0].Score)
	}
	if clusters[0].Anchor.ID != "v1" {
		t.Fatalf("anchor = %q, want v1", clusters[0].Anchor.ID)
	}
}

func TestGoldenScorerBonuses(t *testing.T) {
	anchor := poiAt("v1", domain.CategoryViewpoint, "Mount Lookout", 0)
	parking := poiAt("p1", domain.CategoryParking, "", 0.003)
	cafe := poiAt("c1", domain.CategoryCafe, "", 0.0015)

	clusters := GoldenScorer{}.Score([]domain.POI{anchor, parking, cafe})

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	// 50 base + 20 parking + 30 cafe + 10 name.
	if clusters[0].Score != 110 {
		t.Fatalf("score = %d, want 110", clusters[0].Score)
	}
	if clusters[0].Parking == nil || clusters[0].Parking.ID != "p1" {
		t.Fatalf("expected parking p1 attached, got %v", clusters[0].Parking)
	}
	if clusters[0].Refreshment == nil || clusters[0].Refreshment.ID != "c1" {
		t.Fatalf("expected cafe c1 attached, got %v", clusters[0].Refreshment)
	}
	if clusters[0].Reasons[0] != "Mount Lookout" {
		t.Fatalf("first reason = %q, want the anchor name", clusters[0].Reasons[0])
	}
}

func TestGoldenScorerParkingOutOfRange(t *testing.T) {
	anchor := poiAt("v1", domain.CategoryViewpoint, "", 0)
	parking := poiAt("p1", domain.CategoryParking, "", 0.0045)

	clusters := GoldenScorer{}.Score([]domain.POI{anchor, parking})

	if clusters[0].Score != 50 {
		t.Fatalf("score = %d, want 50 (parking beyond 400 m)", clusters[0].Score)
	}
	if clusters[0].Parking != nil {
		t.Fatalf("expected no parking attached, got %v", clusters[0].Parking)
	}
}

func TestGoldenScorerCafeBeatsBench(t *testing.T) {
	anchor := poiAt("s1", domain.CategorySpring, "", 0)
	bench := poiAt("b1", domain.CategoryBench, "", 0.0005)
	cafe := poiAt("c1", domain.CategoryCafe, "", 0.0015)

	clusters := GoldenScorer{}.Score([]domain.POI{anchor, bench, cafe})

	// The cafe bonus applies even though the bench is closer; the two
	// bonuses never stack.
	if clusters[0].Score != 80 {
		t.Fatalf("score = %d, want 80", clusters[0].Score)
	}
	if clusters[0].Refreshment == nil || clusters[0].Refreshment.ID != "c1" {
		t.Fatalf("expected cafe attached, got %v", clusters[0].Refreshment)
	}
}

func TestGoldenScorerBenchFallback(t *testing.T) {
	anchor := poiAt("v1", domain.CategoryViewpoint, "", 0)
	bench := poiAt("b1", domain.CategoryBench, "", 0.0015)

	clusters := GoldenScorer{}.Score([]domain.POI{anchor, bench})

	if clusters[0].Score != 60 {
		t.Fatalf("score = %d, want 60", clusters[0].Score)
	}
	if clusters[0].Refreshment == nil || clusters[0].Refreshment.ID != "b1" {
		t.Fatalf("expected bench attached, got %v", clusters[0].Refreshment)
	}
}

func TestGoldenScorerTopFive(t *testing.T) {
	var pois []domain.POI
	for i := 0; i < 8; i++ {
		offset := float64(i) * 0.1
		pois = append(pois, poiAt(string(rune('a'+i)), domain.CategoryViewpoint, "", offset))
	}
	// One named anchor should outrank the rest.
	pois[3].Name = "Best View"

	clusters := GoldenScorer{}.Score(pois)

	if len(clusters) != maxClusters {
		t.Fatalf("expected %d clusters, got %d", maxClusters, len(clusters))
	}
	if clusters[0].Anchor.ID != "d" {
		t.Fatalf("top cluster = %q, want the named anchor d", clusters[0].Anchor.ID)
	}
	for i := 1; i < len(clusters); i++ {
		if clusters[i].Score > clusters[i-1].Score {
			t.Fatalf("clusters not sorted: %d before %d", clusters[i-1].Score, clusters[i].Score)
		}
	}
}

func TestGoldenScorerNoAnchors(t *testing.T) {
	pois := []domain.POI{
		poiAt("p1", domain.CategoryParking, "", 0),
		poiAt("c1", domain.CategoryCafe, "", 0.001),
	}

	clusters := GoldenScorer{}.Score(pois)
	if clusters == nil || len(clusters) != 0 {
		t.Fatalf("expected empty cluster slice, got %v", clusters)
	}
}

func TestRouteLevelScorer(t *testing.T) {
	anchor := poiAt("v1", domain.CategoryViewpoint, "", 0)
	cafe := poiAt("c1", domain.CategoryCafe, "", 0.003)
	parking := poiAt("p1", domain.CategoryParking, "", 0.0045)

	clusters := RouteLevelScorer{}.Score([]domain.POI{anchor, cafe, parking})

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	// 30 base + 40 cafe within 500 m + 30 parking within 1000 m.
	if clusters[0].Score != 100 {
		t.Fatalf("score = %d, want 100", clusters[0].Score)
	}
}

func TestRouteLevelScorerBaseOnly(t *testing.T) {
	anchor := poiAt("v1", domain.CategoryViewpoint, "", 0)

	clusters := RouteLevelScorer{}.Score([]domain.POI{anchor})
	if clusters[0].Score != 30 {
		t.Fatalf("score = %d, want 30", clusters[0].Score)
	}
}

func TestScorerForMode(t *testing.T) {
	if got := ScorerForMode(ScoringModeRouteLevel).Name(); got != ScoringModeRouteLevel {
		t.Fatalf("mode route-level resolved to %q", got)
	}
	if got := ScorerForMode("").Name(); got != ScoringModeGolden {
		t.Fatalf("default mode resolved to %q", got)
	}
	if got := ScorerForMode("nonsense").Name(); got != ScoringModeGolden {
		t.Fatalf("unknown mode resolved to %q", got)
	}

	// The names callers configure stay stable.
	if ScoringModeGolden != "golden" || ScoringModeRouteLevel != "route-level" {
		t.Fatalf("mode names changed: %q, %q", ScoringModeGolden, ScoringModeRouteLevel)
	}
}
