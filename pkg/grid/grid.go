// pkg/grid/grid.go
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfBounds     = errors.New("outside of grid")
	ErrAlreadyOccupied = errors.New("cell already occupied")
	ErrNotOccupied     = errors.New("cell not occupied")
)

// Grid is a fixed rows x cols board of square cells with occupancy tracking.
// Each successful Occupy/Vacate bumps Version so cached paths know to rebuild.
type Grid struct {
	Rows     int
	Cols     int
	CellSize float64

	occupied map[Cell]struct{}
	version  uint64
}

func New(rows, cols int, cellSize float64) *Grid {
	if rows <= 0 || cols <= 0 || cellSize <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d cell %.2f", rows, cols, cellSize))
	}
	return &Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		occupied: make(map[Cell]struct{}),
	}
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Pixels returns the pixel extent of the grid.
func (g *Grid) Pixels() Point {
	return Point{X: float64(g.Cols) * g.CellSize, Y: float64(g.Rows) * g.CellSize}
}

// CellToPixelCentre конвертирует клетку в пиксельные координаты её центра
func (g *Grid) CellToPixelCentre(c Cell) Point {
	half := g.CellSize / 2
	return Point{
		X: float64(c.Col)*g.CellSize + half,
		Y: float64(c.Row)*g.CellSize + half,
	}
}

// PixelToCell конвертирует пиксельные координаты в клетку
func (g *Grid) PixelToCell(p Point) (Cell, error) {
	ext := g.Pixels()
	if p.X < 0 || p.Y < 0 || p.X >= ext.X || p.Y >= ext.Y || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return Cell{}, fmt.Errorf("pixel (%.2f, %.2f): %w", p.X, p.Y, ErrOutOfBounds)
	}
	return Cell{
		Row: int(math.Floor(p.Y / g.CellSize)),
		Col: int(math.Floor(p.X / g.CellSize)),
	}, nil
}

// PixelToCellOffset returns how far p sits from the centre of the cell that
// contains it, in cell units. Each component lies in [-0.5, 0.5).
func (g *Grid) PixelToCellOffset(p Point) Point {
	col := math.Floor(p.X / g.CellSize)
	row := math.Floor(p.Y / g.CellSize)
	centre := Point{X: (col + 0.5) * g.CellSize, Y: (row + 0.5) * g.CellSize}
	return p.Sub(centre).Scale(1 / g.CellSize)
}

// IsOccupied reports whether a tower or obstacle stands on c.
func (g *Grid) IsOccupied(c Cell) bool {
	_, ok := g.occupied[c]
	return ok
}

// IsOpen reports whether c is on the grid and free.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && !g.IsOccupied(c)
}

// Occupy marks c as taken.
func (g *Grid) Occupy(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("occupy %v: %w", c, ErrOutOfBounds)
	}
	if g.IsOccupied(c) {
		return fmt.Errorf("occupy %v: %w", c, ErrAlreadyOccupied)
	}
	g.occupied[c] = struct{}{}
	g.version++
	return nil
}

// Vacate frees c.
func (g *Grid) Vacate(c Cell) error {
	if !g.IsOccupied(c) {
		return fmt.Errorf("vacate %v: %w", c, ErrNotOccupied)
	}
	delete(g.occupied, c)
	g.version++
	return nil
}

// Clear frees every cell.
func (g *Grid) Clear() {
	if len(g.occupied) == 0 {
		return
	}
	g.occupied = make(map[Cell]struct{})
	g.version++
}

// Version changes whenever occupancy changes.
func (g *Grid) Version() uint64 {
	return g.version
}

// Occupied returns the occupied cells in row-major order.
func (g *Grid) Occupied() []Cell {
	cells := make([]Cell, 0, len(g.occupied))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if g.IsOccupied(cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// Neighbours возвращает соседей клетки в пределах сетки (порядок Directions)
func (g *Grid) Neighbours(c Cell) []Cell {
	result := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Diameter is the longest possible shortest route on an empty grid, in steps.
func (g *Grid) Diameter() int {
	return g.Rows + g.Cols - 2
}

// BorderCoordinates returns the line segments separating cells, outer frame included.
func (g *Grid) BorderCoordinates() []Segment {
	ext := g.Pixels()
	segments := make([]Segment, 0, g.Rows+g.Cols+2)
	for r := 0; r <= g.Rows; r++ {
		y := float64(r) * g.CellSize
		segments = append(segments, Segment{From: Point{X: 0, Y: y}, To: Point{X: ext.X, Y: y}})
	}
	for c := 0; c <= g.Cols; c++ {
		x := float64(c) * g.CellSize
		segments = append(segments, Segment{From: Point{X: x, Y: 0}, To: Point{X: x, Y: ext.Y}})
	}
	return segments
}

// Intersects reports whether the axis-aligned box [min, max] overlaps the grid.
func (g *Grid) Intersects(min, max Point) bool {
	ext := g.Pixels()
	return max.X > 0 && max.Y > 0 && min.X < ext.X && min.Y < ext.Y
}
