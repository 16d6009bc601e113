package spatial

import (
	"math/rand/v2"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builders(t *testing.T) map[string]Builder {
	t.Helper()

	linear, err := NewBuilder(StrategyLinear, 0)
	require.NoError(t, err)
	grid, err := NewBuilder(StrategyGrid, 50)
	require.NoError(t, err)

	return map[string]Builder{
		StrategyLinear: linear,
		StrategyGrid:   grid,
	}
}

func TestNearest_Empty(t *testing.T) {
	for name, build := range builders(t) {
		t.Run(name, func(t *testing.T) {
			idx, _, ok := build(nil).Nearest(orb.Point{0, 0})
			assert.False(t, ok)
			assert.Equal(t, -1, idx)
		})
	}
}

func TestNearest_PicksClosest(t *testing.T) {
	points := []orb.Point{{0, 0}, {100, 0}, {0, 300}, {250, 250}}

	for name, build := range builders(t) {
		t.Run(name, func(t *testing.T) {
			index := build(points)
			assert.Equal(t, 4, index.Len())

			idx, dist, ok := index.Nearest(orb.Point{90, 5})
			require.True(t, ok)
			assert.Equal(t, 1, idx)
			assert.InDelta(t, 11.18, dist, 0.01)

			idx, _, ok = index.Nearest(orb.Point{240, 260})
			require.True(t, ok)
			assert.Equal(t, 3, idx)
		})
	}
}

func TestNearest_TieGoesToLowestIndex(t *testing.T) {
	// Both candidates are exactly 100 m from the query.
	points := []orb.Point{{500, 500}, {200, 100}, {0, 100}}

	for name, build := range builders(t) {
		t.Run(name, func(t *testing.T) {
			idx, dist, ok := build(points).Nearest(orb.Point{100, 100})
			require.True(t, ok)
			assert.Equal(t, 1, idx)
			assert.InDelta(t, 100, dist, 1e-9)
		})
	}
}

func TestNearest_DuplicatePointsKeepFirst(t *testing.T) {
	points := []orb.Point{{10, 10}, {10, 10}, {10, 10}}

	for name, build := range builders(t) {
		t.Run(name, func(t *testing.T) {
			idx, _, ok := build(points).Nearest(orb.Point{11, 11})
			require.True(t, ok)
			assert.Equal(t, 0, idx)
		})
	}
}

func TestGrid_QueryOutsideExtent(t *testing.T) {
	points := []orb.Point{{0, 0}, {1000, 1000}}
	grid := NewGrid(points, 100)

	idx, _, ok := grid.Nearest(orb.Point{-5000, -5000})
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestGrid_MatchesLinear(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	points := make([]orb.Point, 500)
	for i := range points {
		// Snap to a coarse lattice so exact ties actually occur.
		points[i] = orb.Point{float64(rng.IntN(100)) * 20, float64(rng.IntN(100)) * 20}
	}

	linear := NewLinear(points)
	for _, cellSize := range []float64{15, 100, 400, 5000} {
		grid := NewGrid(points, cellSize)

		for range 300 {
			query := orb.Point{rng.Float64()*2200 - 100, rng.Float64()*2200 - 100}
			if rng.IntN(4) == 0 {
				query = orb.Point{float64(rng.IntN(100))*20 + 10, float64(rng.IntN(100))*20 + 10}
			}

			wantIdx, wantDist, _ := linear.Nearest(query)
			gotIdx, gotDist, ok := grid.Nearest(query)

			require.True(t, ok)
			require.Equal(t, wantIdx, gotIdx, "cell size %v, query %v", cellSize, query)
			require.Equal(t, wantDist, gotDist)
		}
	}
}

func TestNewBuilder_UnknownStrategy(t *testing.T) {
	_, err := NewBuilder("kdtree", 0)
	assert.Error(t, err)
}

func TestNewBuilder_GridDefaultsCellSize(t *testing.T) {
	build, err := NewBuilder(StrategyGrid, 0)
	require.NoError(t, err)

	index, ok := build([]orb.Point{{0, 0}}).(*Grid)
	require.True(t, ok)
	assert.Equal(t, DefaultGridCellSize, index.cellSize)
}
