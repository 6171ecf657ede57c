// internal/component/tower.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/grid"
)

// TowerPhase is what a tower did on its last step.
type TowerPhase int

const (
	TowerIdle     TowerPhase = iota // готова, но целей нет
	TowerRotating                   // поворачивается к цели
	TowerFired                      // выстрелила в этом тике
	TowerCooling                    // перезаряжается
)

func (p TowerPhase) String() string {
	switch p {
	case TowerIdle:
		return "idle"
	case TowerRotating:
		return "rotating"
	case TowerFired:
		return "fired"
	case TowerCooling:
		return "cooling"
	}
	return "unknown"
}

type Tower struct {
	Unit
	Def      *defs.TowerDefinition
	Cell     grid.Cell
	Rotation float64 // радианы
	Level    int
	Cooldown Countdown
	Phase    TowerPhase
	TargetID types.EntityID
}

// NewTower places a level 1 tower of def at the centre of cell.
func NewTower(def *defs.TowerDefinition, cell grid.Cell, centre grid.Point) *Tower {
	return &Tower{
		Unit: Unit{
			Position:  centre,
			Health:    1,
			MaxHealth: 1,
			State:     UnitAlive,
		},
		Def:      def,
		Cell:     cell,
		Rotation: def.Rotation,
		Level:    1,
		Cooldown: NewCountdown(def.CooldownSteps),
	}
}

// Damage is the damage dealt per hit at the current level.
func (t *Tower) Damage() int {
	return t.Def.BaseDamage * t.Level
}

// Value is what the tower has cost so far.
func (t *Tower) Value() int {
	return t.Def.BaseCost + t.Def.LevelCost*(t.Level-1)
}

// LevelUpCost is the price of the next level.
func (t *Tower) LevelUpCost() int {
	return t.Def.LevelCost
}
