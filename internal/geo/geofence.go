// Package geo validates reported check-in coordinates against an event's
// registered location.
package geo

import "math"

const earthRadiusMeters = 6371000.0

// DefaultRadiusMeters is the check-in proximity threshold.
const DefaultRadiusMeters = 200.0

type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula.
func Distance(a, b Point) float64 {
	latA := radians(a.Latitude)
	latB := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinRadius reports whether reported lies within maxMeters of target.
// Exactly maxMeters away is accepted: only distance > maxMeters fails.
func WithinRadius(reported, target Point, maxMeters float64) bool {
	return Distance(reported, target) <= maxMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
