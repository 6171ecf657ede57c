// internal/component/unit.go
package component

import (
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/grid"
)

// UnitState — жизненный цикл юнита
type UnitState int

const (
	UnitAlive UnitState = iota
	UnitDead
	UnitEscaped
)

func (s UnitState) String() string {
	switch s {
	case UnitAlive:
		return "alive"
	case UnitDead:
		return "dead"
	case UnitEscaped:
		return "escaped"
	}
	return "unknown"
}

// Unit is the part every tower and enemy shares: identity, position in pixel
// space and health. Health never drops below zero; zero means dead.
type Unit struct {
	ID        types.EntityID
	Position  grid.Point
	Health    int
	MaxHealth int
	State     UnitState
}

// IsAlive reports whether the unit still takes part in the simulation.
func (u *Unit) IsAlive() bool {
	return u.State == UnitAlive
}

// hurt subtracts amount from health and marks the unit dead at zero.
func (u *Unit) hurt(amount int) {
	if amount <= 0 || !u.IsAlive() {
		return
	}
	u.Health -= amount
	if u.Health <= 0 {
		u.Health = 0
		u.State = UnitDead
	}
}

// HealthFraction is health relative to max, for health bars.
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return float64(u.Health) / float64(u.MaxHealth)
}
