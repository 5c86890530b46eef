package deeplinks

import (
	"fmt"
	"net/url"
	"strings"

	"scenic-route-service/internal/domain"
)

// NavigationLinks holds ready-to-open navigation URLs for one destination or
// a full itinerary.
type NavigationLinks struct {
	Waze       string `json:"waze"`
	GoogleMaps string `json:"google_maps"`
	AppleMaps  string `json:"apple_maps"`
}

// ForDestination builds single-destination links. Waze ignores waypoints
// entirely, so it always gets the plain destination form.
func ForDestination(dest domain.Coordinate) NavigationLinks {
	ll := formatLatLon(dest)

	return NavigationLinks{
		Waze:       fmt.Sprintf("https://waze.com/ul?ll=%s&navigate=yes", ll),
		GoogleMaps: fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s&travelmode=driving", url.QueryEscape(ll)),
		AppleMaps:  fmt.Sprintf("https://maps.apple.com/?daddr=%s&dirflg=d", url.QueryEscape(ll)),
	}
}

// ForItinerary builds links that route through the given stops in order.
// Google Maps caps waypoints, so only the first nine are included.
func ForItinerary(dest domain.Coordinate, stops []domain.Coordinate) NavigationLinks {
	links := ForDestination(dest)
	if len(stops) == 0 {
		return links
	}

	const googleWaypointCap = 9
	wps := stops
	if len(wps) > googleWaypointCap {
		wps = wps[:googleWaypointCap]
	}

	parts := make([]string, 0, len(wps))
	for _, wp := range wps {
		parts = append(parts, formatLatLon(wp))
	}

	links.GoogleMaps = fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&destination=%s&waypoints=%s&travelmode=driving",
		url.QueryEscape(formatLatLon(dest)),
		url.QueryEscape(strings.Join(parts, "|")),
	)

	// Apple Maps accepts repeated daddr parameters, last one being the
	// final destination.
	var b strings.Builder
	b.WriteString("https://maps.apple.com/?")
	for _, wp := range stops {
		b.WriteString("daddr=")
		b.WriteString(url.QueryEscape(formatLatLon(wp)))
		b.WriteString("&")
	}
	b.WriteString("daddr=")
	b.WriteString(url.QueryEscape(formatLatLon(dest)))
	b.WriteString("&dirflg=d")
	links.AppleMaps = b.String()

	return links
}

func formatLatLon(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}
