package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestProject_OriginMapsToZero(t *testing.T) {
	p := Project(zoneOriginLat, zoneOriginLon)

	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Y(), 1e-6)
}

func TestProject_Axes(t *testing.T) {
	north := Project(37.0, 136.0)
	assert.InDelta(t, 0, north.X(), 1e-6, "a point on the central meridian has no easting")
	assert.Greater(t, north.Y(), 110_000.0)
	assert.Less(t, north.Y(), 112_000.0)

	west := Project(36.0, 135.0)
	assert.Less(t, west.X(), 0.0)
	assert.InDelta(t, 90_000, -west.X(), 1_000)
}

func TestProject_PlanarDistanceMatchesGroundDistance(t *testing.T) {
	// Umeda and Namba, Osaka.
	umeda := [2]float64{34.7025, 135.4959}
	namba := [2]float64{34.6655, 135.5011}

	planarM := PlanarDistance(Project(umeda[0], umeda[1]), Project(namba[0], namba[1]))
	groundM := HaversineKm(umeda[0], umeda[1], namba[0], namba[1]) * 1000

	assert.InEpsilon(t, groundM, planarM, 0.01)
}

func TestPlanarDistance(t *testing.T) {
	assert.InDelta(t, 5.0, PlanarDistance(orb.Point{0, 0}, orb.Point{3, 4}), 1e-9)
	assert.Zero(t, PlanarDistance(orb.Point{10, 10}, orb.Point{10, 10}))
}

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{
			name: "same point",
			lat1: 34.69, lon1: 135.50, lat2: 34.69, lon2: 135.50,
			want: 0, delta: 1e-9,
		},
		{
			name: "tokyo to osaka",
			lat1: 35.6812, lon1: 139.7671, lat2: 34.7025, lon2: 135.4959,
			want: 403, delta: 3,
		},
		{
			name: "one degree of latitude",
			lat1: 34.0, lon1: 135.0, lat2: 35.0, lon2: 135.0,
			want: 111.19, delta: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.delta)
			assert.InDelta(t, got, HaversineKm(tt.lat2, tt.lon2, tt.lat1, tt.lon1), 1e-9)
		})
	}
}
