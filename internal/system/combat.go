// internal/system/combat.go
package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/grid"
	"math"
)

// pulseDirections — четыре осевых направления импульса (пиксельные оси)
var pulseDirections = []grid.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	reg  *entity.Registry
	grid *grid.Grid
	// coinTowers возвращает число монетных башен на поле; им владеет Game
	coinTowers func() int
}

func NewCombatSystem(reg *entity.Registry, g *grid.Grid, coinTowers func() int) *CombatSystem {
	return &CombatSystem{reg: reg, grid: g, coinTowers: coinTowers}
}

// Update steps every tower in placement order and returns the coins produced
// this tick.
func (s *CombatSystem) Update() int {
	earned := 0
	for _, t := range s.reg.Towers {
		earned += s.stepTower(t)
	}
	return earned
}

func (s *CombatSystem) stepTower(t *component.Tower) int {
	t.Cooldown.Step()
	if !t.Cooldown.Done() {
		t.Phase = component.TowerCooling
		return 0
	}

	if t.Def.Behavior == defs.BehaviorCoin {
		t.Cooldown.Start()
		t.Phase = component.TowerFired
		return s.coinYield(t)
	}

	target := s.FindTarget(t)
	if target == nil {
		t.Phase = component.TowerIdle
		t.TargetID = 0
		return 0
	}
	t.TargetID = target.ID

	if threshold := t.Def.RotationThreshold; threshold > 0 {
		bearing := bearing(t.Position, target.Position)
		rotation, aligned := utils.RotateToward(t.Rotation, bearing, threshold)
		t.Rotation = rotation
		if !aligned {
			t.Phase = component.TowerRotating
			return 0
		}
	}

	s.fire(t, target)
	t.Cooldown.Start()
	t.Phase = component.TowerFired
	return 0
}

func (s *CombatSystem) coinYield(t *component.Tower) int {
	coin := t.Def.Coin
	stack := 0
	if s.coinTowers != nil {
		stack = s.coinTowers() - 1
	}
	if stack < 0 {
		stack = 0
	}
	return coin.Yield + coin.StackBonus*stack
}

// FindTarget returns the first alive enemy, in spawn order, whose offset
// from t lies inside t's range. The range is evaluated in the tower's frame.
func (s *CombatSystem) FindTarget(t *component.Tower) *component.Enemy {
	for _, e := range s.reg.Enemies {
		if !e.IsAlive() {
			continue
		}
		off := offsetInCells(t.Position, e.Position, s.grid.CellSize)
		x, y := utils.Rotate(off.X, off.Y, -t.Rotation)
		if t.Def.Range.Contains(x, y) {
			return e
		}
	}
	return nil
}

func (s *CombatSystem) fire(t *component.Tower, target *component.Enemy) {
	switch t.Def.Behavior {
	case defs.BehaviorDirect:
		ApplyDamage(target, t.Damage(), t.Def.DamageType)
	case defs.BehaviorMissile:
		s.reg.AddProjectile(s.newProjectile(t, component.ProjectileMissile, unitVector(t.Position, target.Position), target))
	case defs.BehaviorPulse:
		for _, dir := range pulseDirections {
			s.reg.AddProjectile(s.newProjectile(t, component.ProjectilePulse, dir, nil))
		}
	}
}

func (s *CombatSystem) newProjectile(t *component.Tower, kind component.ProjectileKind, dir grid.Point, target *component.Enemy) *component.Projectile {
	stats := t.Def.Projectile
	size := s.grid.CellSize
	p := &component.Projectile{
		Kind:        kind,
		Position:    t.Position,
		Direction:   dir,
		Speed:       stats.Speed * size,
		HitRadius:   stats.HitRadius * size,
		MaxDistance: stats.MaxDistance * size,
		Damage:      t.Damage(),
		DamageType:  t.Def.DamageType,
		OwnerID:     t.ID,
		Hits:        make(map[types.EntityID]bool),
	}
	if target != nil {
		p.TargetID = target.ID
	}
	return p
}

// bearing возвращает угол от from к to в пиксельных координатах
func bearing(from, to grid.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func unitVector(from, to grid.Point) grid.Point {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return grid.Point{X: 1}
	}
	return d.Scale(1 / l)
}
