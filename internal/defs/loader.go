// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed data/*.json
var embedded embed.FS

const (
	towersFile  = "towers.json"
	enemiesFile = "enemies.json"
)

// Catalog is the parameter table for every tower and enemy kind in a match.
type Catalog struct {
	Towers  map[string]TowerDefinition
	Enemies map[string]EnemyDefinition
}

// DefaultCatalog loads the definitions compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return loadFS(sub)
}

// MustDefaultCatalog is DefaultCatalog for callers that cannot recover.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads towers.json and enemies.json from dir.
func LoadCatalog(dir string) (*Catalog, error) {
	return loadFS(os.DirFS(filepath.Clean(dir)))
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	file, err := fs.ReadFile(fsys, towersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	file, err = fs.ReadFile(fsys, enemiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	return NewCatalog(towerDefs, enemyDefs)
}

// NewCatalog validates the definitions and indexes them by ID.
func NewCatalog(towers []TowerDefinition, enemies []EnemyDefinition) (*Catalog, error) {
	c := &Catalog{
		Towers:  make(map[string]TowerDefinition, len(towers)),
		Enemies: make(map[string]EnemyDefinition, len(enemies)),
	}
	for _, def := range towers {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("invalid tower definition: %w", err)
		}
		if _, dup := c.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower definition %q", def.ID)
		}
		c.Towers[def.ID] = def
	}
	for _, def := range enemies {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("invalid enemy definition: %w", err)
		}
		if _, dup := c.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		c.Enemies[def.ID] = def
	}

	// Ссылки между определениями проверяем после индексации
	for _, def := range c.Towers {
		for _, up := range def.Upgrades {
			if _, ok := c.Towers[up]; !ok {
				return nil, fmt.Errorf("tower %s: unknown upgrade %q", def.ID, up)
			}
		}
	}
	for _, def := range c.Enemies {
		if def.Spawner == nil {
			continue
		}
		if _, ok := c.Enemies[def.Spawner.EnemyID]; !ok {
			return nil, fmt.Errorf("enemy %s: unknown minion %q", def.ID, def.Spawner.EnemyID)
		}
	}
	return c, nil
}

// Tower returns the definition for id.
func (c *Catalog) Tower(id string) (*TowerDefinition, bool) {
	def, ok := c.Towers[id]
	if !ok {
		return nil, false
	}
	return &def, true
}

// Enemy returns the definition for id.
func (c *Catalog) Enemy(id string) (*EnemyDefinition, bool) {
	def, ok := c.Enemies[id]
	if !ok {
		return nil, false
	}
	return &def, true
}

// ShopIDs returns the IDs of towers that can be bought directly, ordered by
// cost and then ID.
func (c *Catalog) ShopIDs() []string {
	ids := make([]string, 0, len(c.Towers))
	for id, def := range c.Towers {
		if !def.UpgradeOnly {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.Towers[ids[i]], c.Towers[ids[j]]
		if a.BaseCost != b.BaseCost {
			return a.BaseCost < b.BaseCost
		}
		return a.ID < b.ID
	})
	return ids
}
