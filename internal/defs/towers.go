// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Behavior          TowerBehavior    `json:"behavior"`
	Range             RangeDef         `json:"range"`
	CooldownSteps     int              `json:"cooldown_steps"`
	BaseCost          int              `json:"base_cost"`
	LevelCost         int              `json:"level_cost"`
	BaseDamage        int              `json:"base_damage"`
	DamageType        DamageType       `json:"damage_type,omitempty"`
	Rotation          float64          `json:"rotation"`           // начальный угол, радианы
	RotationThreshold float64          `json:"rotation_threshold"` // 0: башня не поворачивается
	Projectile        *ProjectileStats `json:"projectile,omitempty"`
	Coin              *CoinStats       `json:"coin,omitempty"`
	Upgrades          []string         `json:"upgrades,omitempty"`
	UpgradeOnly       bool             `json:"upgrade_only,omitempty"` // не продаётся в магазине
	Visuals           Visuals          `json:"visuals"`
}

// ProjectileStats describes what missile and pulse towers launch.
// Speed and distances are in cells (per tick for Speed).
type ProjectileStats struct {
	Speed       float64 `json:"speed"`
	HitRadius   float64 `json:"hit_radius"`
	MaxDistance float64 `json:"max_distance"`
}

// CoinStats — параметры башни-добытчика монет
type CoinStats struct {
	Yield      int `json:"yield"`
	StackBonus int `json:"stack_bonus"`
}

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	Glyph        string     `json:"glyph,omitempty"`
}

// CanUpgradeTo reports whether id is listed as an upgrade of d.
func (d *TowerDefinition) CanUpgradeTo(id string) bool {
	for _, u := range d.Upgrades {
		if u == id {
			return true
		}
	}
	return false
}

func (d *TowerDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("tower without id")
	}
	if !d.Behavior.Valid() {
		return fmt.Errorf("tower %s: unknown behavior %q", d.ID, d.Behavior)
	}
	if err := d.Range.validate(); err != nil {
		return fmt.Errorf("tower %s: %w", d.ID, err)
	}
	if d.CooldownSteps < 0 || d.BaseCost < 0 || d.LevelCost < 0 || d.BaseDamage < 0 {
		return fmt.Errorf("tower %s: negative parameter", d.ID)
	}
	switch d.Behavior {
	case BehaviorCoin:
		if d.Coin == nil {
			return fmt.Errorf("tower %s: coin behavior without coin block", d.ID)
		}
	case BehaviorMissile, BehaviorPulse:
		if d.Projectile == nil || d.Projectile.Speed <= 0 {
			return fmt.Errorf("tower %s: %s behavior needs a projectile with positive speed", d.ID, d.Behavior)
		}
		fallthrough
	default:
		if !d.DamageType.Valid() {
			return fmt.Errorf("tower %s: unknown damage type %q", d.ID, d.DamageType)
		}
	}
	return nil
}
