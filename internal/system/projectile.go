// internal/system/projectile.go
package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	reg *entity.Registry
}

func NewProjectileSystem(reg *entity.Registry) *ProjectileSystem {
	return &ProjectileSystem{reg: reg}
}

// Update moves every projectile once and drops the finished ones.
func (s *ProjectileSystem) Update() {
	for _, p := range s.reg.Projectiles {
		if p.Done {
			continue
		}
		switch p.Kind {
		case component.ProjectileMissile:
			s.stepMissile(p)
		case component.ProjectilePulse:
			s.stepPulse(p)
		}
	}
	s.reg.SweepProjectiles()
}

// stepMissile: ракета доворачивает на цель и взрывается при контакте.
// Если цель уже мертва или ушла, ракета гаснет.
func (s *ProjectileSystem) stepMissile(p *component.Projectile) {
	target, ok := s.reg.Enemy(p.TargetID)
	if !ok || !target.IsAlive() {
		p.Done = true
		return
	}
	dist := p.Position.DistanceTo(target.Position)
	if dist <= p.HitRadius || dist <= p.Speed {
		p.Position = target.Position
		ApplyDamage(target, p.Damage, p.DamageType)
		p.Done = true
		return
	}
	p.Direction = unitVector(p.Position, target.Position)
	s.advance(p)
}

// stepPulse: импульс летит по прямой и бьёт каждого задетого врага один раз
func (s *ProjectileSystem) stepPulse(p *component.Projectile) {
	s.advance(p)
	for _, e := range s.reg.Enemies {
		if !e.IsAlive() || p.Hits[e.ID] {
			continue
		}
		if p.Position.DistanceTo(e.Position) <= p.HitRadius {
			p.Hits[e.ID] = true
			ApplyDamage(e, p.Damage, p.DamageType)
		}
	}
}

func (s *ProjectileSystem) advance(p *component.Projectile) {
	step := p.Speed
	if p.MaxDistance > 0 && p.Travelled+step >= p.MaxDistance {
		step = p.MaxDistance - p.Travelled
		p.Done = true
	}
	p.Position = p.Position.Add(p.Direction.Scale(step))
	p.Travelled += step
}
