package services

import (
	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/geo"
	"scenic-route-service/internal/ports"
)

const (
	// roadIndirectionFactor approximates real road distance from the
	// straight line when no routing matrix is available.
	roadIndirectionFactor = 1.3
	assumedAvgSpeedKmh    = 50.0
)

// HaversineEstimator estimates drive time from straight-line distance:
// distanceKm * 1.3 / 50 km/h, in seconds.
type HaversineEstimator struct{}

func (HaversineEstimator) DriveSeconds(from, to domain.Coordinate) float64 {
	distanceKm := geo.Distance(from, to) / 1000
	return distanceKm * roadIndirectionFactor / assumedAvgSpeedKmh * 3600
}

// LegKey identifies a directed leg between two coordinates in a drive-time
// lookup table.
type LegKey struct {
	From domain.Coordinate
	To   domain.Coordinate
}

// DriveTimeTable serves precomputed drive times (e.g. from a routing matrix)
// and falls back to another estimator for legs it does not know.
type DriveTimeTable struct {
	Seconds  map[LegKey]float64
	Fallback ports.DriveTimeEstimator
}

func (t DriveTimeTable) DriveSeconds(from, to domain.Coordinate) float64 {
	if s, ok := t.Seconds[LegKey{From: from, To: to}]; ok {
		return s
	}
	if t.Fallback != nil {
		return t.Fallback.DriveSeconds(from, to)
	}
	return HaversineEstimator{}.DriveSeconds(from, to)
}
