// Package spatial answers nearest-neighbour queries over projected points.
//
// Every implementation returns the same answer for the same input: the point
// with the smallest planar distance, and on an exact tie the one with the
// lowest index. Callers order their points by storage id so the lowest index
// is the first record in storage order.
package spatial

import (
	"hazardmap/internal/errors"

	"github.com/paulmach/orb"
)

// Strategy names accepted by New.
const (
	StrategyLinear = "linear"
	StrategyGrid   = "grid"
)

// DefaultGridCellSize is the grid cell edge in metres when none is configured.
const DefaultGridCellSize = 200.0

// PlanarIndex finds the nearest indexed point to a query point.
type PlanarIndex interface {
	// Nearest returns the index of the closest point and its distance.
	// ok is false when the index is empty.
	Nearest(query orb.Point) (idx int, dist float64, ok bool)
	// Len returns the number of indexed points.
	Len() int
}

// Builder constructs a PlanarIndex over points.
type Builder func(points []orb.Point) PlanarIndex

// NewBuilder returns the builder for a configured strategy.
// An empty strategy selects the linear scan.
func NewBuilder(strategy string, gridCellSize float64) (Builder, error) {
	switch strategy {
	case "", StrategyLinear:
		return func(points []orb.Point) PlanarIndex {
			return NewLinear(points)
		}, nil
	case StrategyGrid:
		if gridCellSize <= 0 {
			gridCellSize = DefaultGridCellSize
		}

		return func(points []orb.Point) PlanarIndex {
			return NewGrid(points, gridCellSize)
		}, nil
	default:
		return nil, errors.Errorf("unknown spatial strategy %q", strategy)
	}
}

// closer reports whether candidate (d, idx) beats the current best.
func closer(d float64, idx int, bestDist float64, bestIdx int) bool {
	return d < bestDist || (d == bestDist && idx < bestIdx)
}
