// internal/app/snapshot.go
package app

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/pkg/grid"
)

// EnemyView — копия состояния врага для потребителей вне ядра
type EnemyView struct {
	ID        uint64  `json:"id"`
	Kind      string  `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
	Footprint float64 `json:"footprint"`
}

type TowerView struct {
	ID       uint64    `json:"id"`
	Kind     string    `json:"kind"`
	Cell     grid.Cell `json:"cell"`
	Rotation float64   `json:"rotation"`
	Level    int       `json:"level"`
	Phase    string    `json:"phase"`
	Value    int       `json:"value"`
}

// ViewTower copies t into a TowerView.
func ViewTower(t *component.Tower) TowerView {
	return TowerView{
		ID:       uint64(t.ID),
		Kind:     t.Def.ID,
		Cell:     t.Cell,
		Rotation: t.Rotation,
		Level:    t.Level,
		Phase:    t.Phase.String(),
		Value:    t.Value(),
	}
}

type ProjectileView struct {
	ID   uint64  `json:"id"`
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Snapshot is a value copy of everything a view needs after a step.
type Snapshot struct {
	Phase       string           `json:"phase"`
	Tick        int              `json:"tick"`
	Wave        int              `json:"wave"`
	MaxWave     int              `json:"max_wave"`
	Score       int              `json:"score"`
	Coins       int              `json:"coins"`
	Lives       int              `json:"lives"`
	Pending     int              `json:"pending"`
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	CellSize    float64          `json:"cell_size"`
	Spawn       grid.Cell        `json:"spawn"`
	Goal        grid.Cell        `json:"goal"`
	Exits       []grid.Cell      `json:"exits"`
	Obstacles   []grid.Cell      `json:"obstacles"`
	Path        []grid.Cell      `json:"path"`
	Enemies     []EnemyView      `json:"enemies"`
	Towers      []TowerView      `json:"towers"`
	Projectiles []ProjectileView `json:"projectiles"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    g.phase.String(),
		Tick:     g.tick,
		Wave:     g.wave,
		MaxWave:  g.level.MaxWave(),
		Score:    g.score,
		Coins:    g.coins,
		Lives:    g.lives,
		Pending:  g.waves.Pending(),
		Rows:     g.grid.Rows,
		Cols:     g.grid.Cols,
		CellSize: g.grid.CellSize,
		Spawn:    g.opts.Spawn,
		Goal:     g.opts.Goal,
		Exits:    g.Exits(),
	}
	for _, c := range g.grid.Occupied() {
		if g.IsObstacle(c) {
			s.Obstacles = append(s.Obstacles, c)
		}
	}
	if path, err := g.path.Shortest(); err == nil {
		s.Path = path
	}
	for _, e := range g.ECS.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        uint64(e.ID),
			Kind:      e.Def.ID,
			X:         e.Position.X,
			Y:         e.Position.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Footprint: e.Footprint,
		})
	}
	for _, t := range g.ECS.Towers {
		s.Towers = append(s.Towers, ViewTower(t))
	}
	for _, p := range g.ECS.Projectiles {
		kind := "missile"
		if p.Kind == component.ProjectilePulse {
			kind = "pulse"
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:   uint64(p.ID),
			Kind: kind,
			X:    p.Position.X,
			Y:    p.Position.Y,
		})
	}
	return s
}
