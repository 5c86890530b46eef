package geo

import (
	"fmt"
	"math"

	"scenic-route-service/internal/domain"
)

const (
	kmPerMesoPoint = 30.0
	minMesoPoints  = 2
	maxMesoPoints  = 8
)

// MesoCount derives how many meso-points to sample from the route distance:
// roughly one per 30 km, bounded to [2, 8]. The upper bound caps downstream
// POI-discovery fan-out.
func MesoCount(distanceMeters float64) int {
	count := int(math.Round(distanceMeters / 1000 / kmPerMesoPoint))
	if count < minMesoPoints {
		count = minMesoPoints
	}
	if count > maxMesoPoints {
		count = maxMesoPoints
	}
	return count
}

// SamplePoints places count meso-points along the polyline at fractions
// i/(count+1) for i = 1..count, so points are evenly spaced by distance.
// count <= 0 yields an empty list without error.
func SamplePoints(polyline []domain.Coordinate, count int) ([]domain.Coordinate, error) {
	if count <= 0 {
		return []domain.Coordinate{}, nil
	}

	points := make([]domain.Coordinate, 0, count)
	for i := 1; i <= count; i++ {
		fraction := float64(i) / float64(count+1)
		p, err := Interpolate(polyline, fraction)
		if err != nil {
			return nil, fmt.Errorf("sample meso-points: %w", err)
		}
		points = append(points, p)
	}

	return points, nil
}
