package system

import (
	"math"
	"testing"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cellSize = 32.0

type fixture struct {
	cat  *defs.Catalog
	reg  *entity.Registry
	grid *grid.Grid
	path *grid.Path
}

func newFixture(t *testing.T, rows, cols int, start, goal grid.Cell) *fixture {
	t.Helper()
	g := grid.New(rows, cols, cellSize)
	return &fixture{
		cat:  defs.MustDefaultCatalog(),
		reg:  entity.NewRegistry(),
		grid: g,
		path: grid.NewPath(g, start, goal),
	}
}

func (f *fixture) enemy(t *testing.T, id string, at grid.Cell) *component.Enemy {
	t.Helper()
	def, ok := f.cat.Enemy(id)
	require.True(t, ok, id)
	e := component.NewEnemy(def, f.grid.CellToPixelCentre(at))
	f.reg.AddEnemy(e)
	return e
}

func (f *fixture) tower(t *testing.T, id string, at grid.Cell) *component.Tower {
	t.Helper()
	def, ok := f.cat.Tower(id)
	require.True(t, ok, id)
	tw := component.NewTower(def, at, f.grid.CellToPixelCentre(at))
	require.NoError(t, f.grid.Occupy(at))
	f.reg.AddTower(tw)
	return tw
}

func TestMovementCrossesOneCellInSixtyTicks(t *testing.T) {
	f := newFixture(t, 1, 6, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 5})
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 0})
	e.Speed = 1.0 / 60
	ms := NewMovementSystem(f.reg, f.grid, f.path, nil)

	next := f.grid.CellToPixelCentre(grid.Cell{Row: 0, Col: 1})
	for i := 0; i < 59; i++ {
		ms.Update()
	}
	assert.NotEqual(t, next, e.Position)
	ms.Update()
	assert.Equal(t, next, e.Position)
	assert.True(t, e.IsAlive())
}

func TestMovementReturnsToCentreBeforeTurning(t *testing.T) {
	// 2x2, goal bottom-left; from (0,1) the route goes west then south
	f := newFixture(t, 2, 2, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 0})
	require.NoError(t, f.grid.Occupy(grid.Cell{Row: 1, Col: 1}))
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 1})
	e.Speed = 0.25
	ms := NewMovementSystem(f.reg, f.grid, f.path, nil)

	corner := f.grid.CellToPixelCentre(grid.Cell{Row: 0, Col: 0})
	for i := 0; i < 4; i++ {
		ms.Update()
		assert.InDelta(t, corner.Y, e.Position.Y, 1e-9, "no vertical movement before the corner centre")
	}
	assert.Equal(t, corner, e.Position)
	ms.Update()
	assert.Equal(t, corner.X, e.Position.X, "turns only after reaching the centre")
	assert.Greater(t, e.Position.Y, corner.Y)
}

func TestMovementEscapesAtGoal(t *testing.T) {
	f := newFixture(t, 1, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 0})
	e.Speed = 0.5
	ms := NewMovementSystem(f.reg, f.grid, f.path, nil)

	ticks := 0
	for e.IsAlive() && ticks < 10 {
		ms.Update()
		ticks++
	}
	assert.Equal(t, component.UnitEscaped, e.State)
	assert.Equal(t, 3, ticks, "enters the goal cell on the third half-cell step")
}

func TestMovementExtraExit(t *testing.T) {
	f := newFixture(t, 1, 4, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3})
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 0})
	ms := NewMovementSystem(f.reg, f.grid, f.path, []grid.Cell{{Row: 0, Col: 1}})
	assert.True(t, ms.IsExit(grid.Cell{Row: 0, Col: 3}))
	for i := 0; i < 20 && e.IsAlive(); i++ {
		ms.Update()
	}
	assert.Equal(t, component.UnitEscaped, e.State)
	cell, err := f.grid.PixelToCell(e.Position)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, cell)
}

func TestMovementSkipsDeadEnemies(t *testing.T) {
	f := newFixture(t, 1, 4, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3})
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 0})
	e.Damage(e.Health, defs.DamageProjectile)
	before := e.Position
	NewMovementSystem(f.reg, f.grid, f.path, nil).Update()
	assert.Equal(t, before, e.Position)
	assert.Zero(t, e.Age)
}

func TestBossHealsAndSpawnsMinions(t *testing.T) {
	f := newFixture(t, 1, 10, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 9})
	boss := f.enemy(t, "boss", grid.Cell{Row: 0, Col: 0})
	boss.Damage(100, defs.DamageExplosive)
	ms := NewMovementSystem(f.reg, f.grid, f.path, nil)

	var requests []MinionRequest
	for i := 0; i < boss.Def.Spawner.Every; i++ {
		requests = append(requests, ms.Update()...)
	}
	assert.Equal(t, boss.MaxHealth, boss.Health, "heal never exceeds max")
	require.Len(t, requests, 1)
	assert.Equal(t, "simple", requests[0].EnemyID)
}

func TestCombatTargetsFirstInSpawnOrder(t *testing.T) {
	f := newFixture(t, 5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	tw := f.tower(t, "energy", grid.Cell{Row: 2, Col: 2})
	far := f.enemy(t, "simple", grid.Cell{Row: 1, Col: 1})
	near := f.enemy(t, "simple", grid.Cell{Row: 2, Col: 1})
	cs := NewCombatSystem(f.reg, f.grid, nil)

	assert.Same(t, far, cs.FindTarget(tw), "spawn order wins over distance")
	far.Damage(far.Health, defs.DamageEnergy)
	assert.Same(t, near, cs.FindTarget(tw), "dead enemies are skipped")
}

func TestDirectTowerKillsOnFourthTick(t *testing.T) {
	f := newFixture(t, 3, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	tw := f.tower(t, "turret", grid.Cell{Row: 1, Col: 1})
	def := *tw.Def
	def.BaseDamage = 25
	def.CooldownSteps = 0
	def.RotationThreshold = 0
	tw.Def = &def
	tw.Cooldown = component.NewCountdown(0)
	e := f.enemy(t, "simple", grid.Cell{Row: 0, Col: 1})
	cs := NewCombatSystem(f.reg, f.grid, nil)

	for i := 1; i <= 3; i++ {
		cs.Update()
		assert.Equal(t, 100-25*i, e.Health)
		assert.Equal(t, component.TowerFired, tw.Phase)
	}
	cs.Update()
	assert.Zero(t, e.Health)
	assert.Equal(t, component.UnitDead, e.State)
}

func TestImmuneDamageIsIgnored(t *testing.T) {
	f := newFixture(t, 3, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	steel := f.enemy(t, "steel", grid.Cell{Row: 0, Col: 0})
	assert.False(t, ApplyDamage(steel, 50, defs.DamageProjectile))
	assert.Equal(t, steel.MaxHealth, steel.Health)
	assert.True(t, ApplyDamage(steel, 50, defs.DamageEnergy))
	assert.Equal(t, steel.MaxHealth-50, steel.Health)
	assert.True(t, ApplyDamage(steel, 1000, defs.DamageEnergy))
	assert.Zero(t, steel.Health, "health clamps at zero")
}

func TestTowerRotatesBeforeFiring(t *testing.T) {
	f := newFixture(t, 5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	tw := f.tower(t, "simple", grid.Cell{Row: 2, Col: 2})
	tw.Rotation = 0
	// прямо вверх: π/2 против часовой в экранных координатах = -π/2
	e := f.enemy(t, "simple", grid.Cell{Row: 1, Col: 2})
	cs := NewCombatSystem(f.reg, f.grid, nil)

	cs.Update()
	assert.Equal(t, component.TowerRotating, tw.Phase)
	assert.InDelta(t, -math.Pi/6, tw.Rotation, 1e-12)
	assert.Equal(t, e.MaxHealth, e.Health)

	cs.Update()
	assert.Equal(t, component.TowerRotating, tw.Phase)
	cs.Update()
	assert.Equal(t, component.TowerFired, tw.Phase)
	assert.InDelta(t, -math.Pi/2, tw.Rotation, 1e-12)
	assert.Equal(t, e.MaxHealth-tw.Damage(), e.Health)
}

func TestCooldownGatesFiring(t *testing.T) {
	f := newFixture(t, 5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	tw := f.tower(t, "turret", grid.Cell{Row: 2, Col: 2})
	e := f.enemy(t, "steel", grid.Cell{Row: 2, Col: 3})
	e.Def = &defs.EnemyDefinition{ID: "dummy", Health: 1000}
	cs := NewCombatSystem(f.reg, f.grid, nil)

	fired := 0
	for i := 0; i < 3*(tw.Def.CooldownSteps)+1; i++ {
		cs.Update()
		if tw.Phase == component.TowerFired {
			fired++
		}
	}
	assert.Equal(t, 4, fired)
}

func TestCoinTowerStacks(t *testing.T) {
	f := newFixture(t, 3, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	a := f.tower(t, "coin", grid.Cell{Row: 0, Col: 1})
	f.tower(t, "coin", grid.Cell{Row: 1, Col: 1})
	count := func() int { return 2 }
	cs := NewCombatSystem(f.reg, f.grid, count)

	assert.Equal(t, 2*(3+1), cs.Update(), "both pay on their first tick")
	for i := 1; i < a.Def.CooldownSteps; i++ {
		assert.Zero(t, cs.Update())
	}
	assert.Equal(t, 8, cs.Update())
}

func TestMissileHomesAndExplodes(t *testing.T) {
	f := newFixture(t, 6, 6, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 5})
	tw := f.tower(t, "missile", grid.Cell{Row: 0, Col: 0})
	tw.Rotation = math.Pi / 4
	e := f.enemy(t, "simple", grid.Cell{Row: 2, Col: 2})
	e.Def = &defs.EnemyDefinition{ID: "dummy", Health: 1000}
	e.Health, e.MaxHealth = 1000, 1000
	cs := NewCombatSystem(f.reg, f.grid, nil)
	ps := NewProjectileSystem(f.reg)

	cs.Update()
	require.Len(t, f.reg.Projectiles, 1)
	for i := 0; i < 20 && len(f.reg.Projectiles) > 0; i++ {
		ps.Update()
	}
	assert.Empty(t, f.reg.Projectiles)
	assert.Equal(t, 1000-tw.Damage(), e.Health)
}

func TestMissileFizzlesWithoutTarget(t *testing.T) {
	f := newFixture(t, 6, 6, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 5})
	tw := f.tower(t, "missile", grid.Cell{Row: 0, Col: 0})
	tw.Rotation = math.Pi / 4
	e := f.enemy(t, "simple", grid.Cell{Row: 2, Col: 2})
	NewCombatSystem(f.reg, f.grid, nil).Update()
	require.Len(t, f.reg.Projectiles, 1)

	e.Damage(e.Health, defs.DamageEnergy)
	NewProjectileSystem(f.reg).Update()
	assert.Empty(t, f.reg.Projectiles)
}

func TestPulseHitsEachEnemyOnce(t *testing.T) {
	f := newFixture(t, 5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	f.tower(t, "pulse", grid.Cell{Row: 2, Col: 2})
	east := f.enemy(t, "simple", grid.Cell{Row: 2, Col: 3})
	diagonal := f.enemy(t, "simple", grid.Cell{Row: 1, Col: 3})
	cs := NewCombatSystem(f.reg, f.grid, nil)
	ps := NewProjectileSystem(f.reg)

	cs.Update()
	require.Len(t, f.reg.Projectiles, 4)
	for i := 0; i < 20 && len(f.reg.Projectiles) > 0; i++ {
		ps.Update()
	}
	assert.Empty(t, f.reg.Projectiles)
	assert.Equal(t, east.MaxHealth-15, east.Health)
	assert.Equal(t, diagonal.MaxHealth, diagonal.Health)
}

func TestWaveQueueOrder(t *testing.T) {
	w := NewWaveSystem()
	w.Queue(10, []defs.Spawn{{Offset: 5, EnemyID: "b"}, {Offset: 0, EnemyID: "a"}, {Offset: 5, EnemyID: "c"}})
	w.Queue(12, []defs.Spawn{{Offset: 3, EnemyID: "d"}})

	assert.Nil(t, w.Due(9))
	assert.Equal(t, []string{"a"}, w.Due(10))
	assert.Equal(t, []string{"b", "c", "d"}, w.Due(15))
	assert.Zero(t, w.Pending())
}
