package services

import (
	"sort"

	"github.com/google/uuid"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/geo"
)

const maxClusters = 5

// Scoring mode names, as accepted by ScorerForMode.
const (
	ScoringModeGolden     = "golden"
	ScoringModeRouteLevel = "route-level"
)

// ClusterScorer ranks a POI pool into golden clusters. Two scoring scales
// coexist in production behind this interface; callers pick one explicitly
// and the constants are never merged.
type ClusterScorer interface {
	Name() string
	Score(pois []domain.POI) []domain.GoldenCluster
}

// ScorerForMode resolves a scorer by its configured name, defaulting to the
// point-level golden scorer.
func ScorerForMode(mode string) ClusterScorer {
	if mode == ScoringModeRouteLevel {
		return RouteLevelScorer{}
	}
	return GoldenScorer{}
}

// GoldenScorer is the point-level scoring mode: base 50 per anchor, +20 for
// parking within 400 m, +30 for a cafe within 200 m (or +10 for a bench when
// no cafe is in range), +10 for a named anchor.
type GoldenScorer struct{}

func (GoldenScorer) Name() string { return ScoringModeGolden }

func (GoldenScorer) Score(pois []domain.POI) []domain.GoldenCluster {
	const (
		baseScore         = 50
		parkingRadius     = 400.0
		parkingBonus      = 20
		refreshmentRadius = 200.0
		cafeBonus         = 30
		benchBonus        = 10
		nameBonus         = 10
	)

	var parking, cafes, benches []domain.POI
	for _, p := range pois {
		switch {
		case p.Category == domain.CategoryParking:
			parking = append(parking, p)
		case p.Category.IsRefreshment():
			cafes = append(cafes, p)
		case p.Category == domain.CategoryBench:
			benches = append(benches, p)
		}
	}

	var clusters []domain.GoldenCluster

	for _, anchor := range pois {
		if !anchor.Category.IsAnchorCategory() {
			continue
		}

		score := baseScore
		var reasons []string

		if anchor.Category == domain.CategoryViewpoint {
			reasons = append(reasons, "Scenic viewpoint")
		} else {
			reasons = append(reasons, "Natural spring")
		}

		cluster := domain.GoldenCluster{
			ID:     uuid.NewString(),
			Anchor: anchor,
		}
		center := cluster.Center()

		if p := nearestWithin(center, parking, parkingRadius); p != nil {
			score += parkingBonus
			cluster.Parking = p
			reasons = append(reasons, "Parking nearby")
		}

		// One refreshment bonus at most; a cafe in range always beats a bench.
		if c := nearestWithin(center, cafes, refreshmentRadius); c != nil {
			score += cafeBonus
			cluster.Refreshment = c
			reasons = append(reasons, "Cafe close by")
		} else if b := nearestWithin(center, benches, refreshmentRadius); b != nil {
			score += benchBonus
			cluster.Refreshment = b
			reasons = append(reasons, "Bench to rest on")
		}

		if anchor.Name != "" {
			score += nameBonus
			reasons = append([]string{anchor.Name}, reasons...)
		}

		cluster.Score = score
		cluster.Reasons = reasons
		clusters = append(clusters, cluster)
	}

	return sortAndTruncate(clusters)
}

// RouteLevelScorer is the "trip-planner" scoring mode used when clusters are
// built directly from route-level POIs: base 30 per anchor, +40 for a
// cafe/food spot within 500 m, +30 for parking within 1000 m.
type RouteLevelScorer struct{}

func (RouteLevelScorer) Name() string { return ScoringModeRouteLevel }

func (RouteLevelScorer) Score(pois []domain.POI) []domain.GoldenCluster {
	const (
		baseScore     = 30
		cafeRadius    = 500.0
		cafeBonus     = 40
		parkingRadius = 1000.0
		parkingBonus  = 30
	)

	var parking, cafes []domain.POI
	for _, p := range pois {
		switch {
		case p.Category == domain.CategoryParking:
			parking = append(parking, p)
		case p.Category.IsRefreshment():
			cafes = append(cafes, p)
		}
	}

	var clusters []domain.GoldenCluster

	for _, anchor := range pois {
		if !anchor.Category.IsAnchorCategory() {
			continue
		}

		score := baseScore
		cluster := domain.GoldenCluster{
			ID:      uuid.NewString(),
			Anchor:  anchor,
			Reasons: []string{"Worth the detour"},
		}
		center := cluster.Center()

		if c := nearestWithin(center, cafes, cafeRadius); c != nil {
			score += cafeBonus
			cluster.Refreshment = c
			cluster.Reasons = append(cluster.Reasons, "Coffee within reach")
		}

		if p := nearestWithin(center, parking, parkingRadius); p != nil {
			score += parkingBonus
			cluster.Parking = p
			cluster.Reasons = append(cluster.Reasons, "Parking within reach")
		}

		cluster.Score = score
		clusters = append(clusters, cluster)
	}

	return sortAndTruncate(clusters)
}

// nearestWithin returns the closest candidate within maxMeters (inclusive),
// or nil when none qualifies.
func nearestWithin(center domain.Coordinate, candidates []domain.POI, maxMeters float64) *domain.POI {
	var nearest *domain.POI
	minDist := 0.0

	for i := range candidates {
		d := geo.Distance(center, candidates[i].Coordinate)
		if d > maxMeters {
			// Threshold is inclusive: exactly maxMeters still qualifies.
			continue
		}
		if nearest == nil || d < minDist {
			nearest = &candidates[i]
			minDist = d
		}
	}

	return nearest
}

// sortAndTruncate orders clusters by descending score, ties broken by anchor
// insertion order, and keeps the top results.
func sortAndTruncate(clusters []domain.GoldenCluster) []domain.GoldenCluster {
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Score > clusters[j].Score
	})

	if len(clusters) > maxClusters {
		clusters = clusters[:maxClusters]
	}
	if clusters == nil {
		clusters = []domain.GoldenCluster{}
	}
	return clusters
}
