package spatial

import (
	"math"

	"hazardmap/internal/geo"

	"github.com/paulmach/orb"
)

// Linear is a brute-force scan over every point.
type Linear struct {
	points []orb.Point
}

// NewLinear indexes points without copying them.
func NewLinear(points []orb.Point) *Linear {
	return &Linear{points: points}
}

// Nearest implements PlanarIndex.
func (l *Linear) Nearest(query orb.Point) (int, float64, bool) {
	bestIdx := -1
	bestDist := math.Inf(1)

	for idx, p := range l.points {
		d := geo.PlanarDistance(query, p)
		if closer(d, idx, bestDist, bestIdx) {
			bestIdx, bestDist = idx, d
		}
	}

	if bestIdx < 0 {
		return -1, 0, false
	}

	return bestIdx, bestDist, true
}

// Len implements PlanarIndex.
func (l *Linear) Len() int {
	return len(l.points)
}
