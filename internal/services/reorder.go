package services

import (
	"math"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

// Reorder applies a greedy nearest-neighbor ordering to the plan's unanchored
// stops, minimizing immediate drive time at each step from the start
// location. It does not attempt global optimization.
//
// Anchored stops are reinserted at their original list index (clamped to the
// new length), preserving anchor position but not necessarily feasibility:
// callers must always run Solve afterwards to recompute times and
// re-validate. The input plan is never mutated.
func Reorder(plan *domain.TripPlan, estimator ports.DriveTimeEstimator) *domain.TripPlan {
	if plan == nil {
		return nil
	}

	out := plan.Clone()
	if len(out.Stops) <= 2 {
		return out
	}

	if estimator == nil {
		estimator = HaversineEstimator{}
	}

	type anchoredStop struct {
		index int
		stop  domain.Stop
	}

	var anchored []anchoredStop
	var remaining []domain.Stop

	for i, stop := range out.Stops {
		if stop.IsAnchor {
			anchored = append(anchored, anchoredStop{index: i, stop: stop})
		} else {
			remaining = append(remaining, stop)
		}
	}

	if len(remaining) == 0 {
		return out
	}

	current := out.StartLocation
	ordered := make([]domain.Stop, 0, len(remaining))

	for len(remaining) > 0 {
		best := 0
		minSeconds := math.Inf(1)

		// Strict less-than keeps the earliest candidate on ties, so the
		// result is deterministic for identical inputs.
		for i, stop := range remaining {
			if s := estimator.DriveSeconds(current, stop.Coordinate); s < minSeconds {
				minSeconds = s
				best = i
			}
		}

		nearest := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		ordered = append(ordered, nearest)
		current = nearest.Coordinate
	}

	for _, a := range anchored {
		at := a.index
		if at > len(ordered) {
			at = len(ordered)
		}
		ordered = append(ordered[:at], append([]domain.Stop{a.stop}, ordered[at:]...)...)
	}

	out.Stops = ordered
	return out
}
