package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/platform/obs"
)

const defaultOverpassURL = "https://overpass-api.de/api/interpreter"

// osmSelector is the OSM tag a search type translates to.
type osmSelector struct {
	Key   string
	Value string
}

var osmSelectors = map[string]osmSelector{
	"viewpoint":   {"tourism", "viewpoint"},
	"picnic_site": {"tourism", "picnic_site"},
	"information": {"tourism", "information"},
	"camp_site":   {"tourism", "camp_site"},
	"peak":        {"natural", "peak"},
	"spring":      {"natural", "spring"},
	"waterfall":   {"waterway", "waterfall"},
	"cafe":        {"amenity", "cafe"},
	"restaurant":  {"amenity", "restaurant"},
	"parking":     {"amenity", "parking"},
	"fuel":        {"amenity", "fuel"},
	"toilets":     {"amenity", "toilets"},
	"bench":       {"amenity", "bench"},
}

// categoryOrder decides which tag wins when an element matches several
// selectors. Anchors first so a spring with a bench tag stays a spring.
var categoryOrder = []string{
	"viewpoint", "spring", "peak", "waterfall",
	"cafe", "restaurant", "parking", "picnic_site",
	"information", "camp_site", "fuel", "toilets", "bench",
}

// OverpassSource implements POISource against the Overpass OSM API.
type OverpassSource struct {
	session  *http.Client
	endpoint string
}

func NewOverpassSource(endpoint string) *OverpassSource {
	if endpoint == "" {
		endpoint = defaultOverpassURL
	}

	return &OverpassSource{
		session:  &http.Client{Timeout: 30 * time.Second},
		endpoint: endpoint,
	}
}

type overpassResponse struct {
	Elements []struct {
		Type   string  `json:"type"`
		ID     int64   `json:"id"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Search queries Overpass for the requested types around a location. Search
// types without a known OSM selector are silently skipped.
func (s *OverpassSource) Search(
	ctx context.Context,
	location domain.Coordinate,
	radiusMeters int,
	searchTypes []string,
) (_ []domain.POI, err error) {
	defer obs.Time(ctx, "overpass.Search")(&err)

	query := buildQuery(location, radiusMeters, searchTypes)
	if query == "" {
		return []domain.POI{}, nil
	}

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("overpass status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var or overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	pois := make([]domain.POI, 0, len(or.Elements))
	for _, el := range or.Elements {
		lat, lon := el.Lat, el.Lon
		if el.Center != nil {
			// Ways and relations carry their location in center.
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		coord := domain.Coordinate{Lat: lat, Lon: lon}
		if !coord.Valid() {
			continue
		}

		tags := domain.Tags(el.Tags)
		pois = append(pois, domain.POI{
			ID:         fmt.Sprintf("%s/%d", el.Type, el.ID),
			Name:       tags.DisplayName(),
			Category:   categoryForTags(tags),
			Coordinate: coord,
			Tags:       tags,
		})
	}

	return pois, nil
}

// buildQuery assembles one Overpass QL query covering nodes and ways for
// every requested type.
func buildQuery(location domain.Coordinate, radiusMeters int, searchTypes []string) string {
	var clauses []string
	for _, st := range searchTypes {
		sel, ok := osmSelectors[st]
		if !ok {
			continue
		}
		around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, location.Lat, location.Lon)
		clauses = append(clauses,
			fmt.Sprintf(`node[%q=%q]%s;`, sel.Key, sel.Value, around),
			fmt.Sprintf(`way[%q=%q]%s;`, sel.Key, sel.Value, around),
		)
	}
	if len(clauses) == 0 {
		return ""
	}

	return fmt.Sprintf("[out:json][timeout:25];(%s);out center;", strings.Join(clauses, ""))
}

func categoryForTags(tags domain.Tags) domain.POICategory {
	for _, st := range categoryOrder {
		sel := osmSelectors[st]
		if v, ok := tags.Get(sel.Key); ok && v == sel.Value {
			return domain.CategoryFromSearchType(st)
		}
	}
	return domain.CategoryOther
}
