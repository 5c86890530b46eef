package domain

// POICategory is the closed category set the scoring pipeline understands.
// Search adapters may query a wider set of map tags; anything outside this
// set normalizes to CategoryOther.
type POICategory string

const (
	CategoryViewpoint POICategory = "viewpoint"
	CategorySpring    POICategory = "spring"
	CategoryParking   POICategory = "parking"
	CategoryCafe      POICategory = "cafe"
	CategoryFood      POICategory = "food"
	CategoryBench     POICategory = "bench"
	CategoryOther     POICategory = "other"
)

// CategoryFromSearchType normalizes a raw search type (OSM-style) onto the
// closed category set.
func CategoryFromSearchType(searchType string) POICategory {
	switch searchType {
	case "viewpoint":
		return CategoryViewpoint
	case "spring":
		return CategorySpring
	case "parking":
		return CategoryParking
	case "cafe":
		return CategoryCafe
	case "restaurant", "food":
		return CategoryFood
	case "bench":
		return CategoryBench
	default:
		return CategoryOther
	}
}

// IsAnchorCategory reports whether a category can anchor a golden cluster.
func (c POICategory) IsAnchorCategory() bool {
	return c == CategoryViewpoint || c == CategorySpring
}

// IsRefreshment reports whether a category counts as a food/drink amenity.
func (c POICategory) IsRefreshment() bool {
	return c == CategoryCafe || c == CategoryFood
}

// Tags is the open key-value map attached to a POI by the map data source.
// Unknown keys are preserved as-is; known keys get typed accessors.
type Tags map[string]string

func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// OpeningHours returns the raw opening_hours tag if present.
func (t Tags) OpeningHours() (string, bool) {
	return t.Get("opening_hours")
}

// Cuisine returns the cuisine tag if present.
func (t Tags) Cuisine() (string, bool) {
	return t.Get("cuisine")
}

// DisplayName resolves a human-readable name from the tag set, preferring
// the local name over language-specific variants. Empty when unnamed.
func (t Tags) DisplayName() string {
	for _, key := range []string{"name", "name:en"} {
		if v, ok := t[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// POI is an immutable snapshot of a mapped place. Identity is the external
// map-data id; two POIs with the same ID describe the same real-world place.
// An empty Name is a valid, common state.
type POI struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name,omitempty"`
	Category            POICategory `json:"category"`
	Coordinate          Coordinate  `json:"coordinate"`
	Tags                Tags        `json:"tags,omitempty"`
	DistanceFromRouteKm float64     `json:"distance_from_route_km,omitempty"`
}
