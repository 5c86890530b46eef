package services

import (
	"fmt"
	"time"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

// Stops arriving before this hour or after hoursLateCutoff trigger an
// opening-hours warning. A simplified heuristic, not real hours parsing.
const (
	hoursEarlyCutoff = 7
	hoursLateCutoff  = 20

	defaultDwellMinutes = 30
	overbookedLimit     = 10 * time.Hour
	defaultDepartHour   = 8
)

// SolveOptions tune a single solve. Zero values select the defaults:
// departure at 08:00 local on the trip date, straight-line drive estimates.
type SolveOptions struct {
	DepartureTime time.Time
	Estimator     ports.DriveTimeEstimator
}

// Solve assigns arrival and departure times to every schedulable stop via a
// single forward pass, then validates the result.
//
// Anchored stops with a planned arrival keep that time verbatim; if it is
// physically unreachable an ANCHOR_VIOLATED warning is emitted but the anchor
// still wins. Skipped stops are bypassed without advancing time or location.
// Warnings are advisory: the returned plan is always a complete schedule.
// The input plan is never mutated; the solve operates on a private copy.
func Solve(plan *domain.TripPlan, opts SolveOptions) (*domain.TripPlan, []domain.Warning) {
	if plan == nil {
		return nil, nil
	}

	out := plan.Clone()
	if len(out.Stops) == 0 {
		return out, []domain.Warning{}
	}

	estimator := opts.Estimator
	if estimator == nil {
		estimator = HaversineEstimator{}
	}

	currentTime := opts.DepartureTime
	if currentTime.IsZero() {
		currentTime = out.DepartureDate().Add(defaultDepartHour * time.Hour)
	}

	warnings := []domain.Warning{}
	currentLocation := out.StartLocation

	for i := range out.Stops {
		stop := &out.Stops[i]
		if stop.Skipped {
			continue
		}

		driveSeconds := estimator.DriveSeconds(currentLocation, stop.Coordinate)
		expectedArrival := currentTime.Add(secondsToDuration(driveSeconds))

		if stop.IsAnchor && !stop.PlannedArrival.IsZero() {
			// Fixed time wins even when unreachable; the solver never
			// overrides an anchor.
			if stop.PlannedArrival.Before(expectedArrival) {
				warnings = append(warnings, domain.Warning{
					Type:     domain.WarningAnchorViolated,
					Severity: domain.SeverityCritical,
					StopID:   stop.ID,
					Message: fmt.Sprintf(
						"stop %q is locked to %s but earliest arrival is %s",
						stopLabel(stop), stop.PlannedArrival.Format("15:04"), expectedArrival.Format("15:04"),
					),
				})
			}
			currentTime = stop.PlannedArrival
		} else {
			currentTime = expectedArrival
			stop.PlannedArrival = currentTime
		}

		dwell := stop.DurationMinutes
		if dwell <= 0 {
			dwell = defaultDwellMinutes
		}
		currentTime = currentTime.Add(time.Duration(dwell) * time.Minute)
		stop.PlannedDeparture = currentTime
		currentLocation = stop.Coordinate
	}

	finalDrive := estimator.DriveSeconds(currentLocation, out.EndLocation)
	out.EstimatedArrival = currentTime.Add(secondsToDuration(finalDrive))

	warnings = append(warnings, validateSchedule(out.Stops)...)

	return out, warnings
}

// validateSchedule runs the advisory checks over a scheduled stop list.
func validateSchedule(stops []domain.Stop) []domain.Warning {
	var warnings []domain.Warning

	var firstArrival, lastDeparture time.Time

	for i := range stops {
		stop := &stops[i]
		if stop.Skipped {
			continue
		}

		if firstArrival.IsZero() && !stop.PlannedArrival.IsZero() {
			firstArrival = stop.PlannedArrival
		}
		if !stop.PlannedDeparture.IsZero() {
			lastDeparture = stop.PlannedDeparture
		}

		if _, ok := stop.Tags.OpeningHours(); !ok || stop.PlannedArrival.IsZero() {
			continue
		}

		hour := stop.PlannedArrival.Hour()
		if hour < hoursEarlyCutoff {
			warnings = append(warnings, domain.Warning{
				Type:     domain.WarningHoursExceeded,
				Severity: domain.SeverityWarning,
				StopID:   stop.ID,
				Message: fmt.Sprintf(
					"stop %q arrives at %s which may be too early",
					stopLabel(stop), stop.PlannedArrival.Format("15:04"),
				),
			})
		} else if hour >= hoursLateCutoff {
			warnings = append(warnings, domain.Warning{
				Type:     domain.WarningHoursExceeded,
				Severity: domain.SeverityWarning,
				StopID:   stop.ID,
				Message: fmt.Sprintf(
					"stop %q arrives at %s which may be too late",
					stopLabel(stop), stop.PlannedArrival.Format("15:04"),
				),
			})
		}
	}

	if !firstArrival.IsZero() && !lastDeparture.IsZero() {
		if span := lastDeparture.Sub(firstArrival); span > overbookedLimit {
			warnings = append(warnings, domain.Warning{
				Type:     domain.WarningOverbooked,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"time at stops spans %.1f hours - consider reducing stops",
					span.Hours(),
				),
			})
		}
	}

	return warnings
}

func stopLabel(stop *domain.Stop) string {
	if stop.Name != "" {
		return stop.Name
	}
	return stop.ID
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
