package spatial

import (
	"math"

	"hazardmap/internal/geo"

	"github.com/paulmach/orb"
)

// Grid buckets points into square cells and searches outward ring by ring
// from the query's cell.
type Grid struct {
	points   []orb.Point
	cells    map[cellKey][]int // indices in ascending order per cell
	cellSize float64
	bound    orb.Bound
	linear   *Linear
}

type cellKey struct {
	col int
	row int
}

// NewGrid indexes points into cells of cellSize metres.
func NewGrid(points []orb.Point, cellSize float64) *Grid {
	g := &Grid{
		points:   points,
		cells:    make(map[cellKey][]int),
		cellSize: cellSize,
		linear:   NewLinear(points),
	}

	if len(points) == 0 {
		return g
	}

	g.bound = orb.MultiPoint(points).Bound()
	for idx, p := range points {
		key := g.keyOf(p)
		g.cells[key] = append(g.cells[key], idx)
	}

	return g
}

// Nearest implements PlanarIndex.
func (g *Grid) Nearest(query orb.Point) (int, float64, bool) {
	if len(g.points) == 0 {
		return -1, 0, false
	}

	// Outside the indexed extent the rings carry no locality, scan instead.
	if !g.bound.Contains(query) {
		return g.linear.Nearest(query)
	}

	center := g.keyOf(query)
	bestIdx := -1
	bestDist := math.Inf(1)

	for ring := 0; ring <= g.maxRing(center); ring++ {
		g.searchRing(query, center, ring, &bestIdx, &bestDist)

		// Unvisited cells are at least ring*cellSize away. Stopping only on a
		// strict inequality keeps index tie-breaks identical to Linear.
		if bestIdx >= 0 && bestDist < float64(ring)*g.cellSize {
			break
		}
	}

	return bestIdx, bestDist, true
}

// Len implements PlanarIndex.
func (g *Grid) Len() int {
	return len(g.points)
}

func (g *Grid) keyOf(p orb.Point) cellKey {
	return cellKey{
		col: int(math.Floor((p.X() - g.bound.Min.X()) / g.cellSize)),
		row: int(math.Floor((p.Y() - g.bound.Min.Y()) / g.cellSize)),
	}
}

// maxRing is the ring that reaches the farthest corner cell of the extent.
func (g *Grid) maxRing(center cellKey) int {
	maxKey := g.keyOf(g.bound.Max)

	return max(center.col, maxKey.col-center.col, center.row, maxKey.row-center.row)
}

func (g *Grid) searchRing(query orb.Point, center cellKey, ring int, bestIdx *int, bestDist *float64) {
	if ring == 0 {
		g.searchCell(query, center, bestIdx, bestDist)

		return
	}

	for dCol := -ring; dCol <= ring; dCol++ {
		for dRow := -ring; dRow <= ring; dRow++ {
			// Only the perimeter of this ring.
			if abs(dCol) != ring && abs(dRow) != ring {
				continue
			}

			g.searchCell(query, cellKey{col: center.col + dCol, row: center.row + dRow}, bestIdx, bestDist)
		}
	}
}

func (g *Grid) searchCell(query orb.Point, key cellKey, bestIdx *int, bestDist *float64) {
	for _, idx := range g.cells[key] {
		d := geo.PlanarDistance(query, g.points[idx])
		if closer(d, idx, *bestDist, *bestIdx) {
			*bestIdx, *bestDist = idx, d
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
