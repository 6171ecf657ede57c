// pkg/grid/path.go
package grid

import (
	"errors"
	"fmt"
)

var ErrNoPath = errors.New("no path to goal")

// Path is the shortest-route delta field from every open cell toward a goal.
//
// The field is built by breadth-first search outward from the goal. Neighbours
// are expanded in Directions order (N, W, S, E) and the first cell that reaches
// a neighbour becomes its parent; later discoveries at the same distance never
// overwrite it. When several routes are equally short this decides which one
// units take, so it is part of the observable behaviour.
//
// The field is rebuilt lazily on the first query after the grid's occupancy
// version changes.
type Path struct {
	grid  *Grid
	start Cell
	goal  Cell

	built   bool
	version uint64
	deltas  map[Cell]Cell
	dist    map[Cell]int
}

func NewPath(g *Grid, start, goal Cell) *Path {
	return &Path{grid: g, start: start, goal: goal}
}

// Start returns the cell enemies spawn on.
func (p *Path) Start() Cell { return p.start }

// Goal returns the cell the field converges on.
func (p *Path) Goal() Cell { return p.goal }

// Invalidate drops the cached field.
func (p *Path) Invalidate() {
	p.built = false
}

func (p *Path) ensure() {
	if p.built && p.version == p.grid.Version() {
		return
	}
	p.deltas, p.dist = Compute(p.grid, p.goal)
	p.version = p.grid.Version()
	p.built = true
}

// Compute runs the breadth-first search from goal and returns the delta and
// distance of every reachable open cell. An occupied or off-grid goal reaches
// nothing.
func Compute(g *Grid, goal Cell) (map[Cell]Cell, map[Cell]int) {
	deltas := make(map[Cell]Cell)
	dist := make(map[Cell]int)
	if !g.IsOpen(goal) {
		return deltas, dist
	}
	deltas[goal] = Cell{}
	dist[goal] = 0

	queue := []Cell{goal}
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		for _, d := range Directions {
			next := current.Add(d)
			if !g.IsOpen(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			deltas[next] = current.Subtract(next)
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return deltas, dist
}

// Delta returns the unit step from c toward the goal. The goal's delta is zero.
func (p *Path) Delta(c Cell) (Cell, error) {
	p.ensure()
	d, ok := p.deltas[c]
	if !ok {
		return Cell{}, fmt.Errorf("delta %v: %w", c, ErrNoPath)
	}
	return d, nil
}

// Distance returns the number of steps from c to the goal.
func (p *Path) Distance(c Cell) (int, error) {
	p.ensure()
	d, ok := p.dist[c]
	if !ok {
		return 0, fmt.Errorf("distance %v: %w", c, ErrNoPath)
	}
	return d, nil
}

// Reachable reports whether c lies on a valid route to the goal.
func (p *Path) Reachable(c Cell) bool {
	p.ensure()
	_, ok := p.dist[c]
	return ok
}

// Shortest returns the cells a unit passes through after leaving the start
// cell, ending with the goal. It is recomputed from the delta field on every
// call.
func (p *Path) Shortest() ([]Cell, error) {
	return p.ShortestFrom(p.start)
}

// ShortestFrom is Shortest for an arbitrary origin.
func (p *Path) ShortestFrom(from Cell) ([]Cell, error) {
	p.ensure()
	steps, ok := p.dist[from]
	if !ok {
		return nil, fmt.Errorf("shortest from %v: %w", from, ErrNoPath)
	}
	cells := make([]Cell, 0, steps)
	current := from
	for current != p.goal {
		current = current.Add(p.deltas[current])
		cells = append(cells, current)
	}
	return cells, nil
}
