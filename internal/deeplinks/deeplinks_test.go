package deeplinks

import (
	"strings"
	"testing"

	"scenic-route-service/internal/domain"
)

func TestForDestination(t *testing.T) {
	dest := domain.Coordinate{Lat: 32.5, Lon: 35.25}

	links := ForDestination(dest)

	if links.Waze != "https://waze.com/ul?ll=32.500000,35.250000&navigate=yes" {
		t.Fatalf("waze link = %q", links.Waze)
	}
	if !strings.Contains(links.GoogleMaps, "destination=32.500000%2C35.250000") {
		t.Fatalf("google link missing destination: %q", links.GoogleMaps)
	}
	if !strings.Contains(links.GoogleMaps, "travelmode=driving") {
		t.Fatalf("google link missing travel mode: %q", links.GoogleMaps)
	}
	if !strings.Contains(links.AppleMaps, "daddr=32.500000%2C35.250000") {
		t.Fatalf("apple link missing daddr: %q", links.AppleMaps)
	}
}

func TestForItineraryWaypoints(t *testing.T) {
	dest := domain.Coordinate{Lat: 31.0, Lon: 35.0}
	stops := []domain.Coordinate{
		{Lat: 32.0, Lon: 34.8},
		{Lat: 31.5, Lon: 34.9},
	}

	links := ForItinerary(dest, stops)

	if !strings.Contains(links.GoogleMaps, "waypoints=32.000000%2C34.800000%7C31.500000%2C34.900000") {
		t.Fatalf("google waypoints wrong: %q", links.GoogleMaps)
	}
	// Waze has no waypoint support; destination only.
	if !strings.Contains(links.Waze, "ll=31.000000,35.000000") {
		t.Fatalf("waze link wrong: %q", links.Waze)
	}
	if strings.Count(links.AppleMaps, "daddr=") != 3 {
		t.Fatalf("apple link should carry every stop plus destination: %q", links.AppleMaps)
	}
}

func TestForItineraryCapsGoogleWaypoints(t *testing.T) {
	dest := domain.Coordinate{Lat: 31.0, Lon: 35.0}

	stops := make([]domain.Coordinate, 12)
	for i := range stops {
		stops[i] = domain.Coordinate{Lat: 32.0 + float64(i)*0.01, Lon: 34.8}
	}

	links := ForItinerary(dest, stops)

	if got := strings.Count(links.GoogleMaps, "%7C"); got != 8 {
		t.Fatalf("expected 9 waypoints (8 separators), got %d in %q", got, links.GoogleMaps)
	}
}

func TestForItineraryNoStops(t *testing.T) {
	dest := domain.Coordinate{Lat: 31.0, Lon: 35.0}

	if got, want := ForItinerary(dest, nil), ForDestination(dest); got != want {
		t.Fatalf("empty itinerary should equal plain destination links: %+v", got)
	}
}
