package entity

import (
	"testing"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeepsOrder(t *testing.T) {
	cat := defs.MustDefaultCatalog()
	simple, ok := cat.Enemy("simple")
	require.True(t, ok)

	r := NewRegistry()
	a := component.NewEnemy(simple, grid.Point{})
	b := component.NewEnemy(simple, grid.Point{})
	c := component.NewEnemy(simple, grid.Point{})
	r.AddEnemy(a)
	r.AddEnemy(b)
	r.AddEnemy(c)
	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)

	a.Damage(a.Health, defs.DamageProjectile)
	c.State = component.UnitEscaped

	dead, escaped := r.SweepEnemies()
	assert.Equal(t, []*component.Enemy{a}, dead)
	assert.Equal(t, []*component.Enemy{c}, escaped)
	assert.Equal(t, []*component.Enemy{b}, r.Enemies)

	got, ok := r.Enemy(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = r.Enemy(a.ID)
	assert.False(t, ok)
}

func TestRegistryTowers(t *testing.T) {
	cat := defs.MustDefaultCatalog()
	def, ok := cat.Tower("simple")
	require.True(t, ok)

	r := NewRegistry()
	cells := []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	for _, c := range cells {
		r.AddTower(component.NewTower(def, c, grid.Point{}))
	}

	removed, ok := r.RemoveTower(cells[1])
	require.True(t, ok)
	assert.Equal(t, cells[1], removed.Cell)
	_, ok = r.TowerAt(cells[1])
	assert.False(t, ok)
	require.Len(t, r.Towers, 2)
	assert.Equal(t, cells[0], r.Towers[0].Cell)
	assert.Equal(t, cells[2], r.Towers[1].Cell)

	_, ok = r.RemoveTower(cells[1])
	assert.False(t, ok)
}
