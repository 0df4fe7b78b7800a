package entity

import (
	"fmt"
	"math"
)

// Coordinates is a latitude/longitude pair in finite floating-point degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are finite degrees.
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0) &&
		c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the pair with fixed 4 decimal places, the precision shown
// to owners in rescue notifications.
func (c Coordinates) String() string {
	return fmt.Sprintf("Lat: %.4f, Lon: %.4f", c.Latitude, c.Longitude)
}
