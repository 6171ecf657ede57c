// internal/app/tower_management.go
package app

import (
	"fmt"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/grid"
	"grid-tower-defense/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Place builds a towerID tower on cell and charges its cost. The placement
// is rejected, leaving every piece of state untouched, when the cell is taken
// or when the tower would cut the spawn or any live enemy off from the goal.
func (g *Game) Place(cell grid.Cell, towerID string) (*component.Tower, error) {
	if err := g.checkMutable(); err != nil {
		return nil, err
	}
	def, ok := g.catalog.Tower(towerID)
	if !ok {
		return nil, fmt.Errorf("place %q: %w", towerID, ErrUnknownTower)
	}
	if def.UpgradeOnly {
		// v2..v4 получаются только через Upgrade
		return nil, fmt.Errorf("place %s: upgrade-only tower: %w", def.ID, ErrInvalidUpgrade)
	}
	if err := g.canPlaceTower(cell); err != nil {
		return nil, err
	}
	if g.coins < def.BaseCost {
		return nil, fmt.Errorf("place %s costs %d, have %d: %w", def.ID, def.BaseCost, g.coins, ErrInsufficientCoins)
	}

	if err := g.grid.Occupy(cell); err != nil {
		return nil, err
	}
	t := component.NewTower(def, cell, g.grid.CellToPixelCentre(cell))
	g.ECS.AddTower(t)
	g.coins -= def.BaseCost

	g.events.Dispatch(event.Event{Type: event.TowerPlaced, Data: t})
	g.log.WithFields(logrus.Fields{"tower": def.ID, "cell": cell.String()}).Debug("tower placed")
	return t, nil
}

// Remove sells the tower on cell and refunds part of its value.
func (g *Game) Remove(cell grid.Cell) (*component.Tower, error) {
	if err := g.checkMutable(); err != nil {
		return nil, err
	}
	t, ok := g.ECS.TowerAt(cell)
	if !ok {
		return nil, fmt.Errorf("remove %v: %w", cell, ErrNothingToRemove)
	}
	if err := g.grid.Vacate(cell); err != nil {
		return nil, err
	}
	g.ECS.RemoveTower(cell)
	g.coins += g.refund(t)

	g.events.Dispatch(event.Event{Type: event.TowerRemoved, Data: t})
	g.log.WithFields(logrus.Fields{"tower": t.Def.ID, "cell": cell.String()}).Debug("tower removed")
	return t, nil
}

func (g *Game) refund(t *component.Tower) int {
	return int(float64(t.Value()) * config.SellRatio)
}

// Upgrade converts the tower on cell into one of its listed upgrades,
// charging the upgrade's base cost. The tower starts over at level 1 and
// keeps whatever is left of its current cooldown.
func (g *Game) Upgrade(cell grid.Cell, targetID string) (*component.Tower, error) {
	if err := g.checkMutable(); err != nil {
		return nil, err
	}
	t, ok := g.ECS.TowerAt(cell)
	if !ok {
		return nil, fmt.Errorf("upgrade %v: %w", cell, ErrNothingToRemove)
	}
	if !t.Def.CanUpgradeTo(targetID) {
		return nil, fmt.Errorf("upgrade %s to %q: %w", t.Def.ID, targetID, ErrInvalidUpgrade)
	}
	def, ok := g.catalog.Tower(targetID)
	if !ok {
		return nil, fmt.Errorf("upgrade to %q: %w", targetID, ErrUnknownTower)
	}
	if g.coins < def.BaseCost {
		return nil, fmt.Errorf("upgrade to %s: %w", def.ID, ErrInsufficientCoins)
	}
	g.coins -= def.BaseCost
	t.Def = def
	t.Level = 1
	cooldown := component.NewCountdown(def.CooldownSteps)
	cooldown.Remaining = utils.ClampInt(t.Cooldown.Remaining, 0, cooldown.Steps)
	t.Cooldown = cooldown
	if cooldown.Done() {
		t.Phase = component.TowerIdle
	}
	return t, nil
}

// LevelUp raises the tower's level, multiplying its damage.
func (g *Game) LevelUp(cell grid.Cell) (*component.Tower, error) {
	if err := g.checkMutable(); err != nil {
		return nil, err
	}
	t, ok := g.ECS.TowerAt(cell)
	if !ok {
		return nil, fmt.Errorf("level up %v: %w", cell, ErrNothingToRemove)
	}
	cost := t.LevelUpCost()
	if g.coins < cost {
		return nil, fmt.Errorf("level up %s: %w", t.Def.ID, ErrInsufficientCoins)
	}
	g.coins -= cost
	t.Level++
	return t, nil
}

// AttemptPlacement previews a placement at pixel p: whether it would be
// legal, and the path enemies would take afterwards.
func (g *Game) AttemptPlacement(p grid.Point) (bool, []grid.Cell) {
	cell, err := g.grid.PixelToCell(p)
	if err != nil {
		return false, nil
	}
	if g.canPlaceTower(cell) != nil {
		return false, nil
	}

	if err := g.grid.Occupy(cell); err != nil {
		return false, nil
	}
	defer func() {
		if err := g.grid.Vacate(cell); err != nil {
			g.log.WithError(err).Error("preview left the grid dirty")
		}
	}()
	path, err := g.path.Shortest()
	if err != nil {
		return false, nil
	}
	return true, path
}

func (g *Game) canPlaceTower(cell grid.Cell) error {
	if !g.grid.InBounds(cell) {
		return fmt.Errorf("place %v: %w", cell, ErrOutOfBounds)
	}
	if g.grid.IsOccupied(cell) {
		return fmt.Errorf("place %v: %w", cell, ErrCellOccupied)
	}
	if g.isPathBlockedBy(cell) {
		return fmt.Errorf("place %v: %w", cell, ErrPathBlocked)
	}
	return nil
}

// isPathBlockedBy occupies cell for a moment and checks that the spawn and
// every live enemy can still reach the goal.
func (g *Game) isPathBlockedBy(cell grid.Cell) bool {
	if err := g.grid.Occupy(cell); err != nil {
		return true
	}
	defer g.grid.Vacate(cell)

	if !g.path.Reachable(g.opts.Spawn) {
		return true
	}
	for _, e := range g.ECS.Enemies {
		if !e.IsAlive() {
			continue
		}
		at, err := g.grid.PixelToCell(e.Position)
		if err != nil {
			continue
		}
		if at == cell || !g.path.Reachable(at) {
			return true
		}
	}
	return false
}
