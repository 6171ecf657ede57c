// pkg/grid/cell.go
package grid

import (
	"fmt"
	"math"

	"grid-tower-defense/pkg/utils"
)

// Cell — дискретная координата сетки (строка, столбец)
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Directions lists the four axis steps in the order the path search expands
// them: north, west, south, east.
var Directions = []Cell{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Subtract возвращает разность двух клеток
func (c Cell) Subtract(other Cell) Cell {
	return Cell{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// Manhattan returns the taxicab distance between two cells.
func (c Cell) Manhattan(to Cell) int {
	return utils.Abs(c.Row-to.Row) + utils.Abs(c.Col-to.Col)
}

// IsZero reports whether c is the zero step.
func (c Cell) IsZero() bool {
	return c.Row == 0 && c.Col == 0
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Point — точка в пиксельных координатах
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return o.Sub(p).Len()
}

// Segment — отрезок для отрисовки границ сетки
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}
