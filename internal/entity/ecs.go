// internal/entity/ecs.go
package entity

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/grid"
)

// Registry хранит все живые сущности матча. Враги лежат в порядке появления,
// башни в порядке постройки, этот порядок и есть порядок обхода при
// выборе целей и шаге симуляции.
type Registry struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile

	towersByCell map[grid.Cell]*component.Tower
}

func NewRegistry() *Registry {
	return &Registry{
		NextID:       1,
		towersByCell: make(map[grid.Cell]*component.Tower),
	}
}

func (r *Registry) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// AddEnemy assigns an ID and appends e to the spawn-ordered list.
func (r *Registry) AddEnemy(e *component.Enemy) {
	e.ID = r.NewEntity()
	r.Enemies = append(r.Enemies, e)
}

// AddTower assigns an ID and appends t to the placement-ordered list.
func (r *Registry) AddTower(t *component.Tower) {
	t.ID = r.NewEntity()
	r.Towers = append(r.Towers, t)
	r.towersByCell[t.Cell] = t
}

func (r *Registry) AddProjectile(p *component.Projectile) {
	p.ID = r.NewEntity()
	r.Projectiles = append(r.Projectiles, p)
}

// TowerAt returns the tower standing on c, if any.
func (r *Registry) TowerAt(c grid.Cell) (*component.Tower, bool) {
	t, ok := r.towersByCell[c]
	return t, ok
}

// RemoveTower drops the tower on c, keeping the order of the rest.
func (r *Registry) RemoveTower(c grid.Cell) (*component.Tower, bool) {
	t, ok := r.towersByCell[c]
	if !ok {
		return nil, false
	}
	delete(r.towersByCell, c)
	for i, other := range r.Towers {
		if other == t {
			r.Towers = append(r.Towers[:i], r.Towers[i+1:]...)
			break
		}
	}
	return t, true
}

// Enemy finds a live-set enemy by ID.
func (r *Registry) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range r.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// SweepEnemies removes every enemy that is no longer alive and returns the
// dead and escaped ones separately, each in spawn order.
func (r *Registry) SweepEnemies() (dead, escaped []*component.Enemy) {
	kept := r.Enemies[:0]
	for _, e := range r.Enemies {
		switch e.State {
		case component.UnitDead:
			dead = append(dead, e)
		case component.UnitEscaped:
			escaped = append(escaped, e)
		default:
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.Enemies); i++ {
		r.Enemies[i] = nil
	}
	r.Enemies = kept
	return dead, escaped
}

// SweepProjectiles drops finished projectiles.
func (r *Registry) SweepProjectiles() {
	kept := r.Projectiles[:0]
	for _, p := range r.Projectiles {
		if !p.Done {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(r.Projectiles); i++ {
		r.Projectiles[i] = nil
	}
	r.Projectiles = kept
}

// CountTowers counts towers accepted by match.
func (r *Registry) CountTowers(match func(*component.Tower) bool) int {
	n := 0
	for _, t := range r.Towers {
		if match(t) {
			n++
		}
	}
	return n
}

// Clear forgets every entity but keeps the ID counter running.
func (r *Registry) Clear() {
	r.Enemies = nil
	r.Towers = nil
	r.Projectiles = nil
	r.towersByCell = make(map[grid.Cell]*component.Tower)
}
