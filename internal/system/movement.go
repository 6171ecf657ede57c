// internal/system/movement.go
package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/pkg/grid"
	"math"
)

// MinionRequest: враг-спавнер просит добавить миньона в позиции Position
type MinionRequest struct {
	EnemyID  string
	Position grid.Point
}

// MovementSystem двигает врагов по полю направлений Path.
type MovementSystem struct {
	reg   *entity.Registry
	grid  *grid.Grid
	path  *grid.Path
	exits map[grid.Cell]bool
}

// NewMovementSystem: goal всегда считается выходом; exits добавляет ещё.
func NewMovementSystem(reg *entity.Registry, g *grid.Grid, path *grid.Path, exits []grid.Cell) *MovementSystem {
	s := &MovementSystem{
		reg:   reg,
		grid:  g,
		path:  path,
		exits: map[grid.Cell]bool{path.Goal(): true},
	}
	for _, c := range exits {
		s.exits[c] = true
	}
	return s
}

// IsExit reports whether reaching c lets an enemy out.
func (s *MovementSystem) IsExit(c grid.Cell) bool {
	return s.exits[c]
}

// Update steps every alive enemy once, in spawn order. Escaped enemies are
// marked UnitEscaped; minion requests are returned for the caller to spawn.
func (s *MovementSystem) Update() []MinionRequest {
	var requests []MinionRequest
	for _, e := range s.reg.Enemies {
		if !e.IsAlive() {
			continue
		}
		e.Age++
		if h := e.Def.Heal; h != nil && e.Age%h.Every == 0 {
			e.Heal(h.Amount)
		}
		if sp := e.Def.Spawner; sp != nil && e.Age%sp.Every == 0 {
			requests = append(requests, MinionRequest{EnemyID: sp.EnemyID, Position: e.Position})
		}

		s.move(e)

		if s.escaped(e) {
			e.State = component.UnitEscaped
		}
	}
	return requests
}

// move advances e by its speed, one segment at a time. A segment either
// returns the enemy to the centre of its cell (when it is beside or behind
// the centre relative to the path) or carries it along the delta to the next
// cell's centre, so enemies never cut corners.
func (s *MovementSystem) move(e *component.Enemy) {
	eps := config.MovementEpsilon
	remaining := e.Speed * s.grid.CellSize
	for remaining > eps {
		cell, err := s.grid.PixelToCell(e.Position)
		if err != nil || s.exits[cell] {
			return
		}
		delta, err := s.path.Delta(cell)
		if err != nil {
			return
		}

		centre := s.grid.CellToPixelCentre(cell)
		target := s.segmentEnd(e.Position, centre, cell, delta)
		dist := e.Position.DistanceTo(target)
		if dist <= eps {
			return
		}
		if dist <= remaining+eps {
			e.Position = target
			remaining -= dist
			continue
		}
		dir := target.Sub(e.Position).Scale(1 / dist)
		e.Position = e.Position.Add(dir.Scale(remaining))
		remaining = 0
	}
}

func (s *MovementSystem) segmentEnd(pos, centre grid.Point, cell, delta grid.Cell) grid.Point {
	eps := config.MovementEpsilon
	off := pos.Sub(centre)
	d := grid.Point{X: float64(delta.Col), Y: float64(delta.Row)}
	along := off.X*d.X + off.Y*d.Y
	perp := off.Sub(d.Scale(along))
	if math.Abs(perp.X) > eps || math.Abs(perp.Y) > eps || along < -eps || delta.IsZero() {
		return centre
	}
	return s.grid.CellToPixelCentre(cell.Add(delta))
}

func (s *MovementSystem) escaped(e *component.Enemy) bool {
	lo, hi := e.BoundingBox(s.grid.CellSize)
	if !s.grid.Intersects(lo, hi) {
		return true
	}
	cell, err := s.grid.PixelToCell(e.Position)
	if err != nil {
		return false
	}
	return s.exits[cell]
}
