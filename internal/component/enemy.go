// internal/component/enemy.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Unit
	Def       *defs.EnemyDefinition
	Speed     float64 // доля клетки за тик
	Footprint float64 // размер в долях клетки
	Points    int
	Age       int // сколько тиков враг уже на поле
}

// NewEnemy builds an alive enemy from its definition at position p.
func NewEnemy(def *defs.EnemyDefinition, p grid.Point) *Enemy {
	return &Enemy{
		Unit: Unit{
			Position:  p,
			Health:    def.Health,
			MaxHealth: def.Health,
			State:     UnitAlive,
		},
		Def:       def,
		Speed:     def.Speed,
		Footprint: def.GridSize,
		Points:    def.Points,
	}
}

// Damage applies amount of damage type t. Immune enemies silently keep their
// health; the return value reports whether health was actually reduced.
func (e *Enemy) Damage(amount int, t defs.DamageType) bool {
	if !e.IsAlive() || amount <= 0 || e.Def.ImmuneTo(t) {
		return false
	}
	e.hurt(amount)
	return true
}

// Heal restores health up to the maximum.
func (e *Enemy) Heal(amount int) {
	if !e.IsAlive() || amount <= 0 {
		return
	}
	e.Health += amount
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}

// BoundingBox returns the pixel-space corners of the enemy's footprint.
func (e *Enemy) BoundingBox(cellSize float64) (grid.Point, grid.Point) {
	half := e.Footprint * cellSize / 2
	return grid.Point{X: e.Position.X - half, Y: e.Position.Y - half},
		grid.Point{X: e.Position.X + half, Y: e.Position.Y + half}
}
