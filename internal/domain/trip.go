package domain

import "time"

type WarningType string

const (
	WarningAnchorViolated WarningType = "ANCHOR_VIOLATED"
	WarningHoursExceeded  WarningType = "SUNSET_OR_HOURS_EXCEEDED"
	WarningOverbooked     WarningType = "OVERBOOKED"
)

type WarningSeverity string

const (
	SeverityWarning  WarningSeverity = "warning"
	SeverityCritical WarningSeverity = "critical"
)

// Warning annotates a solve result. Warnings are advisory: they never block
// a solve, and the solver always returns a complete schedule alongside them.
type Warning struct {
	Type     WarningType     `json:"type"`
	Severity WarningSeverity `json:"severity"`
	StopID   string          `json:"stop_id,omitempty"`
	Message  string          `json:"message"`
}

// Stop is a POI promoted into an itinerary. Its identity is its own ID,
// independent of the POI it originated from.
//
// PlannedArrival and PlannedDeparture are recomputed by the solver unless the
// stop is an anchor; a zero time means "not yet scheduled". Skipped stops stay
// in the list for audit but are excluded from scheduling.
type Stop struct {
	ID               string      `json:"id"`
	Name             string      `json:"name,omitempty"`
	Category         POICategory `json:"category"`
	Coordinate       Coordinate  `json:"coordinate"`
	DurationMinutes  int         `json:"duration_minutes"`
	IsAnchor         bool        `json:"is_anchor"`
	Skipped          bool        `json:"skipped"`
	PlannedArrival   time.Time   `json:"planned_arrival,omitzero"`
	PlannedDeparture time.Time   `json:"planned_departure,omitzero"`
	Tags             Tags        `json:"tags,omitempty"`
	POIID            string      `json:"poi_id,omitempty"`
}

type TripStatus string

const (
	TripDraftStatus TripStatus = "draft"
	TripActive      TripStatus = "active"
	TripCompleted   TripStatus = "completed"
)

// TripPlan is an ordered itinerary between two locations. Stop order is the
// slice index; the solver never reorders stops unless explicitly asked.
type TripPlan struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	StartLocation    Coordinate `json:"start_location"`
	EndLocation      Coordinate `json:"end_location"`
	Date             string     `json:"date"` // YYYY-MM-DD
	Vibes            []string   `json:"vibes,omitempty"`
	Status           TripStatus `json:"status"`
	Route            Route      `json:"route"`
	Stops            []Stop     `json:"stops"`
	EstimatedArrival time.Time  `json:"estimated_arrival,omitzero"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy so each solve invocation owns a private stop list.
func (t *TripPlan) Clone() *TripPlan {
	if t == nil {
		return nil
	}
	out := *t
	out.Stops = make([]Stop, len(t.Stops))
	copy(out.Stops, t.Stops)
	out.Vibes = append([]string(nil), t.Vibes...)
	out.Route.Polyline = append([]Coordinate(nil), t.Route.Polyline...)
	return &out
}

// DepartureDate resolves the trip date at midnight local time, falling back
// to today when the date is missing or malformed.
func (t *TripPlan) DepartureDate() time.Time {
	if d, err := time.ParseInLocation("2006-01-02", t.Date, time.Local); err == nil {
		return d
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
