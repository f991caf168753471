package entity

import (
	"fmt"
	"math"
)

// Location is a coarse geographic position resolved from an IP address.
type Location struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Valid reports whether the coordinates are usable for a weather lookup.
// A zero latitude or longitude is treated as missing, matching the upstream
// APIs which report 0 when they could not resolve an address.
func (l Location) Valid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) {
		return false
	}
	return l.Lat != 0 && l.Lon != 0
}

// ValidateCoordinates checks that lat/lon are inside the WGS84 range.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return &ValidationError{Field: "lat", Message: fmt.Sprintf("must be between -90 and 90, got %v", lat)}
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return &ValidationError{Field: "lon", Message: fmt.Sprintf("must be between -180 and 180, got %v", lon)}
	}
	return nil
}
