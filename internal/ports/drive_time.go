package ports

import "scenic-route-service/internal/domain"

// DriveTimeEstimator returns the estimated drive time in seconds between two
// coordinates. The constraint solver consumes this so a real routing matrix
// can replace the straight-line estimate without touching its control flow.
type DriveTimeEstimator interface {
	DriveSeconds(from, to domain.Coordinate) float64
}
