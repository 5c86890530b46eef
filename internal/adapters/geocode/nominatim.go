package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/platform/obs"
	"scenic-route-service/internal/ports"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves free-text place queries via Nominatim. An
// optional alias map short-circuits common queries (trailheads, local names)
// without a network call; alias keys are matched case-insensitively.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
	aliases map[string]ports.GeocodeResult
}

func NewNominatimGeocoder(baseURL string, aliases map[string]ports.GeocodeResult) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}

	normalized := make(map[string]ports.GeocodeResult, len(aliases))
	for k, v := range aliases {
		normalized[normalizeQuery(k)] = v
	}

	return &NominatimGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		aliases: normalized,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (_ *ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := normalizeQuery(query)
	if norm == "" {
		return nil, nil
	}

	if hit, ok := g.aliases[norm]; ok {
		return &hit, nil
	}

	endpoint := fmt.Sprintf("%s/search?%s", g.baseURL, url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "scenic-route-service/1.0")

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("nominatim status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	coord, err := domain.NewCoordinate(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("nominatim returned invalid coordinate: %w", err)
	}

	return &ports.GeocodeResult{
		Name:       results[0].DisplayName,
		Coordinate: coord,
	}, nil
}

func normalizeQuery(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
