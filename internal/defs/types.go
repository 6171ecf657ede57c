// internal/defs/types.go
package defs

// DamageType tags every hit so enemies can be immune to some kinds.
type DamageType string

const (
	DamageProjectile DamageType = "projectile"
	DamageExplosive  DamageType = "explosive"
	DamageEnergy     DamageType = "energy"
)

// Valid reports whether t is one of the known damage types.
func (t DamageType) Valid() bool {
	switch t {
	case DamageProjectile, DamageExplosive, DamageEnergy:
		return true
	}
	return false
}

// TowerBehavior selects the step function a tower runs each tick.
type TowerBehavior string

const (
	BehaviorDirect  TowerBehavior = "direct"  // мгновенный урон по цели
	BehaviorMissile TowerBehavior = "missile" // самонаводящийся снаряд
	BehaviorPulse   TowerBehavior = "pulse"   // четыре импульса по осям
	BehaviorCoin    TowerBehavior = "coin"    // не атакует, приносит монеты
)

// Valid reports whether b is one of the known behaviours.
func (b TowerBehavior) Valid() bool {
	switch b {
	case BehaviorDirect, BehaviorMissile, BehaviorPulse, BehaviorCoin:
		return true
	}
	return false
}
