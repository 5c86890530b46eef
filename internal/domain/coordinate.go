package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude in degrees).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate validates latitude and longitude ranges.
// Out-of-range values are caller bugs and fail loudly.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf(
			"invalid coordinate lat=%v lon=%v: latitude must be in [-90, 90], longitude in [-180, 180]",
			lat, lon,
		)
	}
	return c, nil
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
