// pkg/render/layout.go
package render

import (
	"math"

	"grid-tower-defense/pkg/grid"
)

// Layout places the board on the screen.
type Layout struct {
	Rows, Cols int
	CellSize   float64
	OffsetX    float64
	OffsetY    float64
}

// CellRect returns the top-left corner and side of c in screen pixels.
func (l Layout) CellRect(c grid.Cell) (x, y, size float32) {
	return float32(l.OffsetX + float64(c.Col)*l.CellSize),
		float32(l.OffsetY + float64(c.Row)*l.CellSize),
		float32(l.CellSize)
}

// ToScreen converts a board pixel position into screen coordinates.
func (l Layout) ToScreen(p grid.Point) (float32, float32) {
	return float32(p.X + l.OffsetX), float32(p.Y + l.OffsetY)
}

// ScreenToCell returns the cell under screen pixel (x, y).
func (l Layout) ScreenToCell(x, y int) (grid.Cell, bool) {
	bx := float64(x) - l.OffsetX
	by := float64(y) - l.OffsetY
	if bx < 0 || by < 0 {
		return grid.Cell{}, false
	}
	c := grid.Cell{Row: int(math.Floor(by / l.CellSize)), Col: int(math.Floor(bx / l.CellSize))}
	if c.Row >= l.Rows || c.Col >= l.Cols {
		return grid.Cell{}, false
	}
	return c, true
}

// ScreenToBoard converts screen pixels into board pixels.
func (l Layout) ScreenToBoard(x, y int) grid.Point {
	return grid.Point{X: float64(x) - l.OffsetX, Y: float64(y) - l.OffsetY}
}

// Barrel returns the triangle drawn over a tower pointing along rotation.
func Barrel(cx, cy, size, rotation float64) [3]grid.Point {
	tip := grid.Point{X: cx + size*math.Cos(rotation), Y: cy + size*math.Sin(rotation)}
	back := size * 0.5
	left := rotation + 2*math.Pi/3
	right := rotation - 2*math.Pi/3
	return [3]grid.Point{
		tip,
		{X: cx + back*math.Cos(left), Y: cy + back*math.Sin(left)},
		{X: cx + back*math.Cos(right), Y: cy + back*math.Sin(right)},
	}
}
