package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestOpenGrid(t *testing.T) {
	g := New(10, 10, 32)
	p := NewPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 9, Col: 9})

	cells, err := p.Shortest()
	require.NoError(t, err)
	require.Len(t, cells, 18)
	assert.Equal(t, Cell{Row: 9, Col: 9}, cells[len(cells)-1])

	prev := Cell{Row: 0, Col: 0}
	prevDist := 18
	for _, c := range cells {
		assert.Equal(t, 1, prev.Manhattan(c), "step %v -> %v is not adjacent", prev, c)
		assert.GreaterOrEqual(t, c.Row, prev.Row)
		assert.GreaterOrEqual(t, c.Col, prev.Col)
		d, err := p.Distance(c)
		require.NoError(t, err)
		assert.Equal(t, prevDist-1, d)
		prev, prevDist = c, d
	}
}

func TestShortestIsRestartable(t *testing.T) {
	g := New(5, 5, 10)
	p := NewPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	first, err := p.Shortest()
	require.NoError(t, err)
	second, err := p.Shortest()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeltaConvergesWithinDiameter(t *testing.T) {
	g := New(8, 9, 10)
	for _, c := range []Cell{{1, 1}, {1, 2}, {2, 5}, {3, 5}, {4, 5}, {5, 3}, {6, 7}} {
		require.NoError(t, g.Occupy(c))
	}
	goal := Cell{Row: 7, Col: 0}
	p := NewPath(g, Cell{Row: 0, Col: 8}, goal)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !p.Reachable(cell) {
				continue
			}
			steps := 0
			for cell != goal {
				d, err := p.Delta(cell)
				require.NoError(t, err)
				require.Equal(t, 1, d.Manhattan(Cell{}), "delta must be a unit axis step")
				cell = cell.Add(d)
				steps++
				require.LessOrEqual(t, steps, g.Rows*g.Cols)
			}
			want, err := p.Distance(Cell{Row: r, Col: c})
			require.NoError(t, err)
			assert.Equal(t, want, steps)
		}
	}
}

func TestDeltaEmptyGridWithinDiameter(t *testing.T) {
	g := New(6, 6, 10)
	goal := Cell{Row: 5, Col: 5}
	p := NewPath(g, Cell{}, goal)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			steps := 0
			for cell != goal {
				d, err := p.Delta(cell)
				require.NoError(t, err)
				cell = cell.Add(d)
				steps++
			}
			assert.LessOrEqual(t, steps, g.Diameter())
		}
	}
}

func TestGoalDeltaIsZero(t *testing.T) {
	g := New(3, 3, 10)
	p := NewPath(g, Cell{}, Cell{Row: 2, Col: 2})
	d, err := p.Delta(Cell{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestNoPathWhenWalledOff(t *testing.T) {
	g := New(3, 3, 10)
	p := NewPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2})
	require.True(t, p.Reachable(Cell{Row: 0, Col: 0}))

	require.NoError(t, g.Occupy(Cell{Row: 1, Col: 2}))
	require.NoError(t, g.Occupy(Cell{Row: 2, Col: 1}))

	_, err := p.Delta(Cell{Row: 0, Col: 0})
	assert.ErrorIs(t, err, ErrNoPath)
	_, err = p.Shortest()
	assert.ErrorIs(t, err, ErrNoPath)
	assert.False(t, p.Reachable(Cell{Row: 1, Col: 2}), "occupied cells are never on a path")

	require.NoError(t, g.Vacate(Cell{Row: 2, Col: 1}))
	assert.True(t, p.Reachable(Cell{Row: 0, Col: 0}), "vacating must invalidate the cached field")
}

// Ties are broken by expansion order from the goal: N, W, S, E. The cell
// north of the goal is expanded before the one west of it, so it claims the
// top-left corner first and the corner's delta points east.
func TestTieBreakFirstWriterWins(t *testing.T) {
	g := New(2, 2, 10)
	p := NewPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})

	// (0,1) is discovered first (north of goal), then (1,0) (west of goal).
	// Expanding (0,1) reaches (0,0) through its west side before (1,0) does.
	d, err := p.Delta(Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 0, Col: 1}, d)

	cells, err := p.Shortest()
	require.NoError(t, err)
	assert.Equal(t, []Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, cells)
}
