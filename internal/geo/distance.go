package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// EarthRadiusKm is the mean earth radius used for shelter ranking.
const EarthRadiusKm = 6371.0

// PlanarDistance returns the Euclidean distance between two projected points.
func PlanarDistance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// HaversineKm returns the great-circle distance in kilometres between two
// WGS84 coordinates on a sphere of radius EarthRadiusKm.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
