package domain

import "testing"

func TestNewCoordinateValidation(t *testing.T) {
	if _, err := NewCoordinate(32.0853, 34.7818); err != nil {
		t.Fatalf("unexpected error for valid coordinate: %v", err)
	}

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 90.5, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 180.1},
		{"lon too low", 0, -200},
	}

	for _, tc := range cases {
		if _, err := NewCoordinate(tc.lat, tc.lon); err == nil {
			t.Errorf("%s: expected error for lat=%v lon=%v", tc.name, tc.lat, tc.lon)
		}
	}
}

func TestTagsAccessors(t *testing.T) {
	tags := Tags{
		"opening_hours": "Mo-Su 08:00-18:00",
		"cuisine":       "regional",
		"name:en":       "Hidden Spring",
	}

	if oh, ok := tags.OpeningHours(); !ok || oh != "Mo-Su 08:00-18:00" {
		t.Fatalf("OpeningHours = %q, %v", oh, ok)
	}
	if c, ok := tags.Cuisine(); !ok || c != "regional" {
		t.Fatalf("Cuisine = %q, %v", c, ok)
	}

	// name:en is the fallback when the local name is absent.
	if got := tags.DisplayName(); got != "Hidden Spring" {
		t.Fatalf("DisplayName = %q, want %q", got, "Hidden Spring")
	}

	tags["name"] = "Ein Seter"
	if got := tags.DisplayName(); got != "Ein Seter" {
		t.Fatalf("DisplayName = %q, want local name", got)
	}

	if got := (Tags{}).DisplayName(); got != "" {
		t.Fatalf("DisplayName on empty tags = %q, want empty", got)
	}
}

func TestGoldenClusterCenter(t *testing.T) {
	cluster := GoldenCluster{
		Anchor: POI{
			ID:         "node/1",
			Category:   CategoryViewpoint,
			Coordinate: Coordinate{Lat: 32.9, Lon: 35.4},
		},
		Parking: &POI{
			ID:         "node/2",
			Category:   CategoryParking,
			Coordinate: Coordinate{Lat: 32.91, Lon: 35.41},
		},
	}

	// The anchor's position represents the cluster, amenities notwithstanding.
	if got := cluster.Center(); got != cluster.Anchor.Coordinate {
		t.Fatalf("Center = %+v, want anchor coordinate %+v", got, cluster.Anchor.Coordinate)
	}
}

func TestTripPlanClone(t *testing.T) {
	plan := &TripPlan{
		ID:    "trip-1",
		Stops: []Stop{{ID: "s1", DurationMinutes: 30}},
		Vibes: []string{"nature"},
	}

	clone := plan.Clone()
	clone.Stops[0].DurationMinutes = 99
	clone.Vibes[0] = "foodie"

	if plan.Stops[0].DurationMinutes != 30 {
		t.Fatal("clone shares stop backing array with original")
	}
	if plan.Vibes[0] != "nature" {
		t.Fatal("clone shares vibes backing array with original")
	}
}
