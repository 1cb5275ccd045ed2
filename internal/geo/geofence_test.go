package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Da Nang city center, the coordinate neighbourhood the campus uses.
var campus = Point{Latitude: 16.074160, Longitude: 108.150782}

// northOf shifts a point north by roughly the given distance in meters.
// One degree of latitude spans ~111195 m on the sphere used by Distance.
func northOf(p Point, meters float64) Point {
	return Point{
		Latitude:  p.Latitude + meters/111194.93,
		Longitude: p.Longitude,
	}
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 0, Distance(campus, campus), 1e-9)

	d := Distance(campus, northOf(campus, 150))
	assert.InDelta(t, 150, d, 1.0)

	d = Distance(campus, northOf(campus, 1000))
	assert.InDelta(t, 1000, d, 2.0)

	// Symmetric.
	a, b := campus, northOf(campus, 320)
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(northOf(campus, 150), campus, DefaultRadiusMeters))
	assert.False(t, WithinRadius(northOf(campus, 250), campus, DefaultRadiusMeters))
}

func TestWithinRadius_BoundaryIsInclusive(t *testing.T) {
	reported := northOf(campus, 200)
	exact := Distance(reported, campus)

	// Exactly at the threshold is accepted; any farther is rejected.
	assert.True(t, WithinRadius(reported, campus, exact))
	assert.False(t, WithinRadius(reported, campus, exact-0.001))
}
