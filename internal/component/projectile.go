// internal/component/projectile.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/grid"
)

// ProjectileKind — тип снаряда
type ProjectileKind int

const (
	ProjectileMissile ProjectileKind = iota // летит к цели и взрывается
	ProjectilePulse                         // летит по прямой, задевая всех
)

// Projectile представляет летящий снаряд. Speed, HitRadius and MaxDistance
// are in pixels (per tick for Speed).
type Projectile struct {
	ID          types.EntityID
	Kind        ProjectileKind
	Position    grid.Point
	Direction   grid.Point // единичный вектор
	Speed       float64
	HitRadius   float64
	Damage      int
	DamageType  defs.DamageType
	TargetID    types.EntityID
	OwnerID     types.EntityID
	Travelled   float64
	MaxDistance float64
	Hits        map[types.EntityID]bool
	Done        bool
}
