// Package geo holds the coordinate math shared by the hazard and shelter lookups.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// GRS80 ellipsoid and JGD2011 plane rectangular coordinate system VI
// (EPSG:6674), the zone covering the Kinki region.
const (
	grs80SemiMajorAxis = 6378137.0
	grs80InverseFlat   = 298.257222101
	zoneOriginLat      = 36.0
	zoneOriginLon      = 136.0
	zoneScaleFactor    = 0.9999
)

// tmParams holds the Krüger series coefficients used by the GSI
// Transverse Mercator formulas. They depend only on the ellipsoid and zone.
type tmParams struct {
	n        float64
	aBar     float64 // rectifying radius scaled by m0
	sPhi0    float64 // meridian arc length to the origin latitude, scaled by m0
	alpha    [6]float64
	lambda0  float64
	twoRootN float64
}

var zoneVI = newTMParams(zoneOriginLat, zoneOriginLon, zoneScaleFactor)

func newTMParams(originLat, originLon, m0 float64) tmParams {
	n := 1 / (2*grs80InverseFlat - 1)
	n2, n3, n4, n5 := n*n, n*n*n, n*n*n*n, n*n*n*n*n

	a := [6]float64{
		1 + n2/4 + n4/64,
		-3.0 / 2 * (n - n3/8 - n5/64),
		15.0 / 16 * (n2 - n4/4),
		-35.0 / 48 * (n3 - 5.0/16*n5),
		315.0 / 512 * n4,
		-693.0 / 1280 * n5,
	}
	alpha := [6]float64{
		0,
		n/2 - 2.0/3*n2 + 5.0/16*n3 + 41.0/180*n4 - 127.0/288*n5,
		13.0/48*n2 - 3.0/5*n3 + 557.0/1440*n4 + 281.0/630*n5,
		61.0/240*n3 - 103.0/140*n4 + 15061.0/26880*n5,
		49561.0/161280*n4 - 179.0/168*n5,
		34729.0 / 80640 * n5,
	}

	phi0 := originLat * math.Pi / 180
	k := m0 * grs80SemiMajorAxis / (1 + n)

	arc := a[0] * phi0
	for j := 1; j <= 5; j++ {
		arc += a[j] * math.Sin(2*float64(j)*phi0)
	}

	return tmParams{
		n:        n,
		aBar:     k * a[0],
		sPhi0:    k * arc,
		alpha:    alpha,
		lambda0:  originLon * math.Pi / 180,
		twoRootN: 2 * math.Sqrt(n) / (1 + n),
	}
}

// Project converts a WGS84 latitude/longitude into JGD2011 plane rectangular
// coordinates (zone VI) in metres. The returned point is {easting, northing}.
//
// The same projection must be used for stored records and for queries so
// that planar distances are comparable.
func Project(lat, lon float64) orb.Point {
	return zoneVI.forward(lat, lon)
}

func (p tmParams) forward(lat, lon float64) orb.Point {
	phi := lat * math.Pi / 180
	lambda := lon * math.Pi / 180

	sinPhi := math.Sin(phi)
	t := math.Sinh(math.Atanh(sinPhi) - p.twoRootN*math.Atanh(p.twoRootN*sinPhi))
	tBar := math.Sqrt(1 + t*t)

	dLambda := lambda - p.lambda0
	xiPrime := math.Atan2(t, math.Cos(dLambda))
	etaPrime := math.Atanh(math.Sin(dLambda) / tBar)

	northing := xiPrime
	easting := etaPrime
	for j := 1; j <= 5; j++ {
		twoJ := 2 * float64(j)
		northing += p.alpha[j] * math.Sin(twoJ*xiPrime) * math.Cosh(twoJ*etaPrime)
		easting += p.alpha[j] * math.Cos(twoJ*xiPrime) * math.Sinh(twoJ*etaPrime)
	}

	return orb.Point{p.aBar * easting, p.aBar*northing - p.sPhi0}
}
