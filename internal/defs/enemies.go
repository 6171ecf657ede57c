// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Health     int          `json:"health"`
	Speed      float64      `json:"speed"`     // доля клетки за тик
	GridSize   float64      `json:"grid_size"` // размер в долях клетки
	Points     int          `json:"points"`
	Immunities []DamageType `json:"immunities,omitempty"`
	Heal       *HealStats   `json:"heal,omitempty"`
	Spawner    *SpawnStats  `json:"spawner,omitempty"`
	Visuals    Visuals      `json:"visuals"`
}

// HealStats: restore Amount health every Every ticks, never above max.
type HealStats struct {
	Amount int `json:"amount"`
	Every  int `json:"every"`
}

// SpawnStats: drop an EnemyID minion every Every ticks.
type SpawnStats struct {
	EnemyID string `json:"enemy_id"`
	Every   int    `json:"every"`
}

// ImmuneTo reports whether damage of type t is ignored.
func (d *EnemyDefinition) ImmuneTo(t DamageType) bool {
	for _, im := range d.Immunities {
		if im == t {
			return true
		}
	}
	return false
}

func (d *EnemyDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("enemy without id")
	}
	if d.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive", d.ID)
	}
	if d.Speed < 0 || d.GridSize < 0 || d.Points < 0 {
		return fmt.Errorf("enemy %s: negative parameter", d.ID)
	}
	for _, im := range d.Immunities {
		if !im.Valid() {
			return fmt.Errorf("enemy %s: unknown immunity %q", d.ID, im)
		}
	}
	if d.Heal != nil && d.Heal.Every <= 0 {
		return fmt.Errorf("enemy %s: heal.every must be positive", d.ID)
	}
	if d.Spawner != nil && d.Spawner.Every <= 0 {
		return fmt.Errorf("enemy %s: spawner.every must be positive", d.ID)
	}
	return nil
}
