package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/ports"
)

func TestGeocodeResolvesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Mount Meron" {
			t.Errorf("q = %q, want Mount Meron", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing User-Agent header")
		}

		w.Write([]byte(`[{"display_name": "Mount Meron, Israel", "lat": "32.9995", "lon": "35.4047"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, nil)

	result, err := g.Geocode(context.Background(), "Mount Meron")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a result")
	}
	if result.Name != "Mount Meron, Israel" {
		t.Fatalf("name = %q", result.Name)
	}
	if result.Coordinate.Lat != 32.9995 || result.Coordinate.Lon != 35.4047 {
		t.Fatalf("coordinate = %+v", result.Coordinate)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, nil)

	result, err := g.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("no match should not be an error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
}

func TestGeocodeAliasSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("alias hit must not reach the network")
	}))
	defer srv.Close()

	aliases := map[string]ports.GeocodeResult{
		"Nahal Amud Trailhead": {
			Name:       "Nahal Amud Trailhead",
			Coordinate: domain.Coordinate{Lat: 32.9247, Lon: 35.5025},
		},
	}
	g := NewNominatimGeocoder(srv.URL, aliases)

	// Alias match is case-insensitive and whitespace-tolerant.
	result, err := g.Geocode(context.Background(), "  nahal   amud trailhead ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.Coordinate.Lat != 32.9247 {
		t.Fatalf("alias not resolved: %+v", result)
	}
}

func TestGeocodeEmptyQuery(t *testing.T) {
	g := NewNominatimGeocoder("http://unused.invalid", nil)

	result, err := g.Geocode(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for blank query, got %+v", result)
	}
}
