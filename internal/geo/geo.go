package geo

import (
	"errors"
	"math"

	"scenic-route-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two coordinates in
// meters (haversine). Symmetric; zero iff both points coincide.
func Distance(a, b domain.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Interpolate returns the point at the given fraction along a polyline.
// Placement is proportional to cumulative segment distance, not vertex index,
// so uneven vertex density does not bias the result. Fractions are clamped to
// [0, 1]. An empty polyline is a caller bug and fails loudly.
func Interpolate(polyline []domain.Coordinate, fraction float64) (domain.Coordinate, error) {
	if len(polyline) == 0 {
		return domain.Coordinate{}, errors.New("interpolate: polyline must have at least one coordinate")
	}

	if fraction <= 0 {
		return polyline[0], nil
	}
	if fraction >= 1 {
		return polyline[len(polyline)-1], nil
	}

	segments := make([]float64, len(polyline)-1)
	total := 0.0
	for i := 0; i < len(polyline)-1; i++ {
		d := Distance(polyline[i], polyline[i+1])
		segments[i] = d
		total += d
	}
	if total == 0 {
		return polyline[0], nil
	}

	target := total * fraction
	cumulative := 0.0

	for i, segLen := range segments {
		if cumulative+segLen >= target {
			segFraction := 0.0
			if segLen > 0 {
				segFraction = (target - cumulative) / segLen
			}

			start := polyline[i]
			end := polyline[i+1]
			return domain.Coordinate{
				Lat: start.Lat + (end.Lat-start.Lat)*segFraction,
				Lon: start.Lon + (end.Lon-start.Lon)*segFraction,
			}, nil
		}
		cumulative += segLen
	}

	return polyline[len(polyline)-1], nil
}

// PointToSegmentDistance returns the cross-track distance in meters from a
// point to the great-circle segment between segStart and segEnd.
func PointToSegmentDistance(point, segStart, segEnd domain.Coordinate) float64 {
	if segStart == segEnd {
		return Distance(point, segStart)
	}

	lat1 := segStart.Lat * math.Pi / 180
	lon1 := segStart.Lon * math.Pi / 180
	lat2 := segEnd.Lat * math.Pi / 180
	lon2 := segEnd.Lon * math.Pi / 180
	lat3 := point.Lat * math.Pi / 180
	lon3 := point.Lon * math.Pi / 180

	// Angular distance from segment start to the point.
	d13 := Distance(segStart, point) / earthRadiusMeters

	// Initial bearing start -> end.
	theta12 := math.Atan2(
		math.Sin(lon2-lon1)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1),
	)

	// Initial bearing start -> point.
	theta13 := math.Atan2(
		math.Sin(lon3-lon1)*math.Cos(lat3),
		math.Cos(lat1)*math.Sin(lat3)-math.Sin(lat1)*math.Cos(lat3)*math.Cos(lon3-lon1),
	)

	dxt := math.Abs(clampedAsin(math.Sin(d13) * math.Sin(theta13-theta12)))

	return earthRadiusMeters * dxt
}

// IsOffRoute reports whether a position lies farther than thresholdMeters
// from every segment of the polyline. An empty polyline counts as off-route.
func IsOffRoute(current domain.Coordinate, polyline []domain.Coordinate, thresholdMeters float64) bool {
	if len(polyline) == 0 {
		return true
	}
	if len(polyline) == 1 {
		return Distance(current, polyline[0]) > thresholdMeters
	}

	minDist := math.Inf(1)
	for i := 0; i < len(polyline)-1; i++ {
		d := PointToSegmentDistance(current, polyline[i], polyline[i+1])
		if d < minDist {
			minDist = d
		}
	}

	return minDist > thresholdMeters
}

// clampedAsin guards against floating error pushing the argument past ±1.
func clampedAsin(x float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, x)))
}
