package app

import (
	"testing"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceChargesAndOccupies(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	var placed int
	g.On(event.TowerPlaced, func(event.Event) { placed++ })

	tw, err := g.Place(grid.Cell{Row: 1, Col: 1}, "hammer")
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, tw.Cell)
	assert.Equal(t, g.Grid().CellToPixelCentre(tw.Cell), tw.Position)
	assert.True(t, g.Grid().IsOccupied(tw.Cell))
	assert.Equal(t, 90, g.Coins())
	assert.Equal(t, 1, placed)

	_, err = g.Place(grid.Cell{Row: 1, Col: 1}, "hammer")
	assert.ErrorIs(t, err, ErrCellOccupied)
	_, err = g.Place(grid.Cell{Row: 3, Col: 1}, "hammer")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.Place(grid.Cell{Row: 0, Col: 1}, "nope")
	assert.ErrorIs(t, err, ErrUnknownTower)
}

func TestRejectedPlacementLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	_, err := g.Place(grid.Cell{Row: 0, Col: 1}, "wall")
	require.NoError(t, err)

	occupied := g.Grid().Occupied()
	coins := g.Coins()
	towers := len(g.Towers())

	// (1,0) закрыл бы последний выход из спавна
	_, err = g.Place(grid.Cell{Row: 1, Col: 0}, "wall")
	assert.ErrorIs(t, err, ErrPathBlocked)
	assert.Equal(t, occupied, g.Grid().Occupied())
	assert.Equal(t, coins, g.Coins())
	assert.Len(t, g.Towers(), towers)

	for _, c := range []grid.Cell{g.Spawn(), g.Goal()} {
		_, err = g.Place(c, "wall")
		assert.ErrorIs(t, err, ErrPathBlocked, "cell %v", c)
	}
	assert.Equal(t, occupied, g.Grid().Occupied())
	assert.True(t, g.Path().Reachable(g.Spawn()))
}

func TestPlacementCannotStrandLiveEnemies(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	require.NoError(t, g.QueueWave([]defs.Spawn{{EnemyID: "dummy"}}))
	g.Start()
	g.Step()
	require.Len(t, g.Enemies(), 1)

	// враг стоит в центре поля; обход вокруг него свободен
	centre := grid.Cell{Row: 1, Col: 1}
	g.Enemies()[0].Position = g.Grid().CellToPixelCentre(centre)
	_, err := g.Place(centre, "wall")
	assert.ErrorIs(t, err, ErrPathBlocked, "an enemy stands on the cell")
	assert.False(t, g.Grid().IsOccupied(centre))

	_, err = g.Place(grid.Cell{Row: 0, Col: 2}, "wall")
	assert.NoError(t, err)
}

func TestPlacementNeedsCoins(t *testing.T) {
	g := newTestGame(t, 3, 3, func(o *Options) { o.Coins = 5 })
	_, err := g.Place(grid.Cell{Row: 1, Col: 1}, "hammer")
	assert.ErrorIs(t, err, ErrInsufficientCoins)
	assert.False(t, g.Grid().IsOccupied(grid.Cell{Row: 1, Col: 1}))
	assert.Equal(t, 5, g.Coins())
}

func TestRemoveRefunds(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	var removed int
	g.On(event.TowerRemoved, func(event.Event) { removed++ })

	cell := grid.Cell{Row: 1, Col: 1}
	placed, err := g.Place(cell, "hammer")
	require.NoError(t, err)
	_, err = g.LevelUp(cell)
	require.NoError(t, err)
	assert.Equal(t, 85, g.Coins())
	assert.Equal(t, 15, placed.Value())

	tw, err := g.Remove(cell)
	require.NoError(t, err)
	assert.Same(t, placed, tw)
	assert.Equal(t, 85+int(15*0.8), g.Coins())
	assert.False(t, g.Grid().IsOccupied(cell))
	assert.Empty(t, g.Towers())
	assert.Equal(t, 1, removed)
}

func TestRemoveOnEmptyCellIsIdempotent(t *testing.T) {
	g := newTestGame(t, 3, 3, func(o *Options) { o.Obstacles = []grid.Cell{{Row: 1, Col: 1}} })
	before := g.Snapshot()
	version := g.Grid().Version()
	for i := 0; i < 3; i++ {
		for _, c := range []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}} {
			_, err := g.Remove(c)
			assert.ErrorIs(t, err, ErrNothingToRemove)
		}
	}
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, version, g.Grid().Version())
}

func TestUpgradeAndLevelUp(t *testing.T) {
	g := newTestGame(t, 5, 5, func(o *Options) {
		o.Catalog = nil
		o.Coins = 200
	})
	cell := grid.Cell{Row: 2, Col: 2}
	tw, err := g.Place(cell, "simple")
	require.NoError(t, err)
	assert.Equal(t, 180, g.Coins())

	_, err = g.Upgrade(cell, "missile")
	assert.ErrorIs(t, err, ErrInvalidUpgrade)

	_, err = g.LevelUp(cell)
	require.NoError(t, err)
	assert.Equal(t, 2, tw.Level)
	assert.Equal(t, 2*tw.Def.BaseDamage, tw.Damage())

	up, err := g.Upgrade(cell, "simple_v3")
	require.NoError(t, err)
	assert.Same(t, tw, up)
	assert.Equal(t, "simple_v3", tw.Def.ID)
	assert.Equal(t, 1, tw.Level)
	assert.Equal(t, 180-15-40, g.Coins())

	_, err = g.Upgrade(grid.Cell{Row: 0, Col: 4}, "simple_v2")
	assert.ErrorIs(t, err, ErrNothingToRemove)
}

func TestAttemptPlacementPreview(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	occupied := g.Grid().Occupied()

	ok, path := g.AttemptPlacement(g.Grid().CellToPixelCentre(grid.Cell{Row: 0, Col: 1}))
	assert.True(t, ok)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, path)
	assert.Equal(t, occupied, g.Grid().Occupied(), "preview never commits")

	ok, path = g.AttemptPlacement(grid.Point{X: -1, Y: 5})
	assert.False(t, ok)
	assert.Nil(t, path)

	_, err := g.Place(grid.Cell{Row: 0, Col: 1}, "wall")
	require.NoError(t, err)
	ok, _ = g.AttemptPlacement(g.Grid().CellToPixelCentre(grid.Cell{Row: 1, Col: 0}))
	assert.False(t, ok)
}

func TestCoinTowersPayStackedYield(t *testing.T) {
	g := newTestGame(t, 3, 3, func(o *Options) { o.Coins = 2 })
	_, err := g.Place(grid.Cell{Row: 0, Col: 1}, "coin")
	require.NoError(t, err)
	_, err = g.Place(grid.Cell{Row: 0, Col: 2}, "coin")
	require.NoError(t, err)
	require.Zero(t, g.Coins())

	g.Start()
	g.Step()
	assert.Equal(t, 2*(3+1), g.Coins())
	g.Step()
	assert.Equal(t, 8, g.Coins(), "cooling down")
	g.Step()
	assert.Equal(t, 16, g.Coins())
}

func TestUpgradeOnlyTowersCannotBePlaced(t *testing.T) {
	g := newTestGame(t, 5, 5, func(o *Options) {
		o.Catalog = nil
		o.Coins = 1000
	})
	for _, id := range []string{"simple_v2", "simple_v3", "simple_v4"} {
		tw, err := g.Place(grid.Cell{Row: 2, Col: 2}, id)
		assert.ErrorIs(t, err, ErrInvalidUpgrade, id)
		assert.Nil(t, tw)
	}
	assert.Equal(t, 1000, g.Coins())
	assert.Empty(t, g.Towers())
	assert.Empty(t, g.Grid().Occupied())

	// тот же v4 через апгрейд стоит базовую башню плюс апгрейд
	_, err := g.Place(grid.Cell{Row: 2, Col: 2}, "simple")
	require.NoError(t, err)
	_, err = g.Upgrade(grid.Cell{Row: 2, Col: 2}, "simple_v4")
	require.NoError(t, err)
	assert.Equal(t, 1000-20-80, g.Coins())
}

func TestUpgradeKeepsCooldown(t *testing.T) {
	towers := []defs.TowerDefinition{
		{ID: "gun", Behavior: defs.BehaviorDirect, Range: defs.Circular(20), CooldownSteps: 3, BaseDamage: 1, DamageType: defs.DamageProjectile, BaseCost: 1, Upgrades: []string{"gun_v2"}},
		{ID: "gun_v2", Behavior: defs.BehaviorDirect, Range: defs.Circular(20), CooldownSteps: 3, BaseDamage: 1, DamageType: defs.DamageProjectile, BaseCost: 1, UpgradeOnly: true},
	}
	enemies := []defs.EnemyDefinition{{ID: "dummy", Health: 100, Speed: 0, GridSize: 0.2, Points: 5}}
	cat, err := defs.NewCatalog(towers, enemies)
	require.NoError(t, err)

	g := newTestGame(t, 5, 5, func(o *Options) { o.Catalog = cat })
	cell := grid.Cell{Row: 2, Col: 2}
	tw, err := g.Place(cell, "gun")
	require.NoError(t, err)
	require.NoError(t, g.QueueWave([]defs.Spawn{{EnemyID: "dummy"}}))
	g.Start()

	require.True(t, g.Step())
	require.Len(t, g.Enemies(), 1)
	dummy := g.Enemies()[0]
	assert.Equal(t, 99, dummy.Health, "fires on the first tick")

	_, err = g.Upgrade(cell, "gun_v2")
	require.NoError(t, err)
	assert.Equal(t, 3, tw.Cooldown.Remaining)

	require.True(t, g.Step())
	require.True(t, g.Step())
	assert.Equal(t, 99, dummy.Health, "upgrade must not skip the running cooldown")
	require.True(t, g.Step())
	assert.Equal(t, 98, dummy.Health)
}

func TestUpgradeCapsCooldownToTarget(t *testing.T) {
	towers := []defs.TowerDefinition{
		{ID: "gun", Behavior: defs.BehaviorDirect, Range: defs.Circular(20), CooldownSteps: 5, BaseDamage: 1, DamageType: defs.DamageProjectile, BaseCost: 1, Upgrades: []string{"gun_fast"}},
		{ID: "gun_fast", Behavior: defs.BehaviorDirect, Range: defs.Circular(20), CooldownSteps: 2, BaseDamage: 1, DamageType: defs.DamageProjectile, BaseCost: 1, UpgradeOnly: true},
	}
	enemies := []defs.EnemyDefinition{{ID: "dummy", Health: 100, Speed: 0, GridSize: 0.2, Points: 5}}
	cat, err := defs.NewCatalog(towers, enemies)
	require.NoError(t, err)

	g := newTestGame(t, 5, 5, func(o *Options) { o.Catalog = cat })
	cell := grid.Cell{Row: 2, Col: 2}
	tw, err := g.Place(cell, "gun")
	require.NoError(t, err)
	require.NoError(t, g.QueueWave([]defs.Spawn{{EnemyID: "dummy"}}))
	g.Start()
	require.True(t, g.Step())
	require.Equal(t, 5, tw.Cooldown.Remaining)

	_, err = g.Upgrade(cell, "gun_fast")
	require.NoError(t, err)
	assert.Equal(t, 2, tw.Cooldown.Steps)
	assert.Equal(t, 2, tw.Cooldown.Remaining)
}

func TestAttemptPlacementOnTakenCellKeepsGrid(t *testing.T) {
	g := newTestGame(t, 3, 3, nil)
	_, err := g.Place(grid.Cell{Row: 0, Col: 1}, "wall")
	require.NoError(t, err)
	version := g.Grid().Version()
	occupied := g.Grid().Occupied()

	ok, path := g.AttemptPlacement(g.Grid().CellToPixelCentre(grid.Cell{Row: 0, Col: 1}))
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.Equal(t, occupied, g.Grid().Occupied())
	assert.Equal(t, version, g.Grid().Version())

	ok, _ = g.AttemptPlacement(g.Grid().CellToPixelCentre(grid.Cell{Row: 2, Col: 0}))
	assert.True(t, ok)
	assert.Equal(t, occupied, g.Grid().Occupied(), "preview vacates what it occupied")
	assert.True(t, g.Path().Reachable(g.Spawn()))
}
