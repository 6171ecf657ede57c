// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/level"
	"grid-tower-defense/internal/system"
	"grid-tower-defense/pkg/grid"

	"github.com/sirupsen/logrus"
)

// Options описывает поле и стартовые условия матча.
type Options struct {
	Rows      int
	Cols      int
	CellSize  float64
	Spawn     grid.Cell
	Goal      grid.Cell
	Exits     []grid.Cell // дополнительные выходы, goal выход всегда
	Obstacles []grid.Cell
	Coins     int
	Lives     int
	Level     level.Level
	Catalog   *defs.Catalog
	Logger    *logrus.Entry
}

// DefaultOptions: поле из config, спавн в левом верхнем углу, цель в
// правом нижнем, стандартный уровень.
func DefaultOptions() Options {
	return Options{
		Rows:     config.GridRows,
		Cols:     config.GridCols,
		CellSize: config.CellSize,
		Spawn:    grid.Cell{Row: 0, Col: 0},
		Goal:     grid.Cell{Row: config.GridRows - 1, Col: config.GridCols - 1},
		Coins:    config.StartingCoins,
		Lives:    config.StartingLives,
		Level:    level.NewStandard(0),
	}
}

// Game owns all mutable simulation state of one match. It is not safe for
// concurrent use; drivers call Step from a single timer.
type Game struct {
	opts Options
	log  *logrus.Entry

	grid        *grid.Grid
	path        *grid.Path
	ECS         *entity.Registry
	catalog     *defs.Catalog
	level       level.Level
	events      *event.Dispatcher
	movement    *system.MovementSystem
	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem
	waves       *system.WaveSystem

	phase       component.MatchPhase
	tick        int
	wave        int
	score       int
	coins       int
	lives       int
	waveStarted bool
	stepping    bool
}

// NewGame validates opts and builds a match in the setup phase.
func NewGame(opts Options) (*Game, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 || opts.CellSize <= 0 {
		return nil, fmt.Errorf("grid %dx%d cell %.2f: %w", opts.Rows, opts.Cols, opts.CellSize, ErrInvalidOptions)
	}
	if opts.Lives <= 0 || opts.Coins < 0 {
		return nil, fmt.Errorf("lives %d coins %d: %w", opts.Lives, opts.Coins, ErrInvalidOptions)
	}
	if opts.Catalog == nil {
		cat, err := defs.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("default catalog: %w", err)
		}
		opts.Catalog = cat
	}
	if opts.Level == nil {
		opts.Level = &level.Scripted{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	g := &Game{
		opts:    opts,
		log:     opts.Logger.WithField("component", "game"),
		catalog: opts.Catalog,
		level:   opts.Level,
		events:  event.NewDispatcher(),
	}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) build() error {
	o := g.opts
	g.grid = grid.New(o.Rows, o.Cols, o.CellSize)
	for _, c := range []grid.Cell{o.Spawn, o.Goal} {
		if !g.grid.InBounds(c) {
			return fmt.Errorf("spawn/goal %v: %w", c, ErrOutOfBounds)
		}
	}
	for _, c := range o.Exits {
		if !g.grid.InBounds(c) {
			return fmt.Errorf("exit %v: %w", c, ErrOutOfBounds)
		}
	}
	for _, c := range o.Obstacles {
		if c == o.Spawn || c == o.Goal {
			return fmt.Errorf("obstacle on spawn or goal %v: %w", c, ErrInvalidOptions)
		}
		if err := g.grid.Occupy(c); err != nil {
			return fmt.Errorf("obstacle: %w", err)
		}
	}
	g.path = grid.NewPath(g.grid, o.Spawn, o.Goal)
	if !g.path.Reachable(o.Spawn) {
		return fmt.Errorf("obstacles cut spawn %v from goal %v: %w", o.Spawn, o.Goal, ErrPathBlocked)
	}

	g.ECS = entity.NewRegistry()
	g.movement = system.NewMovementSystem(g.ECS, g.grid, g.path, o.Exits)
	g.combat = system.NewCombatSystem(g.ECS, g.grid, g.coinTowers)
	g.projectiles = system.NewProjectileSystem(g.ECS)
	g.waves = system.NewWaveSystem()

	g.phase = component.PhaseSetup
	g.tick, g.wave, g.score = 0, 0, 0
	g.coins, g.lives = o.Coins, o.Lives
	g.waveStarted = false
	return nil
}

// Reset returns the match to its starting state. Subscriptions survive.
func (g *Game) Reset() error {
	if g.stepping {
		return ErrReentrant
	}
	if err := g.build(); err != nil {
		return err
	}
	g.log.Info("match reset")
	return nil
}

// Start moves the match from setup to running.
func (g *Game) Start() {
	if g.phase == component.PhaseSetup {
		g.phase = component.PhaseRunning
		g.log.Info("match started")
	}
}

// Pause suspends ticks. Steps while paused do nothing.
func (g *Game) Pause() {
	if g.phase == component.PhaseRunning {
		g.phase = component.PhasePaused
	}
}

func (g *Game) Resume() {
	if g.phase == component.PhasePaused {
		g.phase = component.PhaseRunning
	}
}

// TogglePause switches between running and paused; setup counts as paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case component.PhaseRunning:
		g.Pause()
	case component.PhasePaused:
		g.Resume()
	case component.PhaseSetup:
		g.Start()
	}
}

// On subscribes fn to events of type t.
func (g *Game) On(t event.EventType, fn func(event.Event)) event.SubscriptionID {
	return g.events.On(t, fn)
}

func (g *Game) Off(t event.EventType, id event.SubscriptionID) {
	g.events.Unsubscribe(t, id)
}

// Step advances the match by exactly one tick and reports whether the match
// is still ongoing. Outside the running phase it does nothing.
func (g *Game) Step() bool {
	switch g.phase {
	case component.PhaseWon, component.PhaseLost:
		return false
	case component.PhaseSetup, component.PhasePaused:
		return true
	}

	if g.stepping {
		return true
	}
	g.stepping = true
	defer func() { g.stepping = false }()

	g.tick++
	for _, id := range g.waves.Due(g.tick) {
		g.spawn(id, g.grid.CellToPixelCentre(g.opts.Spawn))
	}

	for _, req := range g.movement.Update() {
		g.spawn(req.EnemyID, req.Position)
	}
	g.coins += g.combat.Update()
	g.projectiles.Update()

	dead, escaped := g.ECS.SweepEnemies()
	g.reward(dead)
	g.lives -= len(escaped)
	if g.lives < 0 {
		g.lives = 0
	}

	if len(dead) > 0 {
		g.events.Emit(event.Event{Type: event.EnemyDeath, Data: dead})
	}
	if len(escaped) > 0 {
		g.events.Emit(event.Event{Type: event.EnemyEscape, Data: escaped})
	}
	cleared := g.waveStarted && len(g.ECS.Enemies) == 0 && g.waves.Pending() == 0
	if cleared {
		g.waveStarted = false
		g.events.Emit(event.Event{Type: event.Cleared, Data: g.wave})
	}

	switch {
	case g.lives == 0:
		g.finish(component.PhaseLost)
	case cleared && g.level.MaxWave() > 0 && g.wave >= g.level.MaxWave():
		g.finish(component.PhaseWon)
	}

	g.events.Flush()
	return !g.phase.Over()
}

// reward pays coins and score for the enemies killed this tick. Score grows
// with the square root of the number of simultaneous kills.
func (g *Game) reward(dead []*component.Enemy) {
	if len(dead) == 0 {
		return
	}
	bonus := math.Sqrt(float64(len(dead)))
	for _, e := range dead {
		g.coins += e.Points
		g.score += int(float64(e.Points) * bonus)
	}
}

func (g *Game) finish(phase component.MatchPhase) {
	g.phase = phase
	g.events.Emit(event.Event{Type: event.GameOver, Data: phase})
	g.log.WithFields(logrus.Fields{
		"phase": phase.String(),
		"tick":  g.tick,
		"wave":  g.wave,
		"score": g.score,
	}).Info("match over")
}

func (g *Game) spawn(enemyID string, at grid.Point) {
	def, ok := g.catalog.Enemy(enemyID)
	if !ok {
		// очередь проверяется при постановке, сюда попадают только миньоны
		g.log.WithField("enemy", enemyID).Warn("unknown enemy, spawn skipped")
		return
	}
	g.ECS.AddEnemy(component.NewEnemy(def, at))
}

// coinTowers считает совокупное состояние, которым владеет Game: число монетных
// башен на поле
func (g *Game) coinTowers() int {
	return g.ECS.CountTowers(func(t *component.Tower) bool {
		return t.Def.Behavior == defs.BehaviorCoin
	})
}

// QueueWave schedules spawns relative to the current tick.
func (g *Game) QueueWave(spawns []defs.Spawn) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	for _, sp := range spawns {
		if _, ok := g.catalog.Enemy(sp.EnemyID); !ok {
			return fmt.Errorf("queue %q: %w", sp.EnemyID, ErrUnknownEnemy)
		}
	}
	g.waves.Queue(g.tick, spawns)
	if len(spawns) > 0 {
		g.waveStarted = true
	}
	g.log.WithFields(logrus.Fields{"tick": g.tick, "count": len(spawns)}).Debug("wave queued")
	return nil
}

// NextWave queues the level's next wave and starts the match if needed.
func (g *Game) NextWave() (int, error) {
	if err := g.checkMutable(); err != nil {
		return 0, err
	}
	n := g.wave + 1
	if n > g.level.MaxWave() {
		return 0, ErrNoMoreWaves
	}
	if err := g.QueueWave(g.level.Wave(n)); err != nil {
		return 0, fmt.Errorf("wave %d: %w", n, err)
	}
	g.wave = n
	g.waveStarted = true
	g.Start()
	g.events.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
	g.log.WithField("wave", n).Info("wave started")
	return n, nil
}

func (g *Game) checkMutable() error {
	if g.stepping {
		return ErrReentrant
	}
	if g.phase.Over() {
		return ErrMatchOver
	}
	return nil
}

func (g *Game) Grid() *grid.Grid            { return g.grid }
func (g *Game) Path() *grid.Path            { return g.path }
func (g *Game) Catalog() *defs.Catalog      { return g.catalog }
func (g *Game) Level() level.Level          { return g.level }
func (g *Game) Phase() component.MatchPhase { return g.phase }
func (g *Game) Tick() int                   { return g.tick }
func (g *Game) Wave() int                   { return g.wave }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Coins() int                  { return g.coins }
func (g *Game) Lives() int                  { return g.lives }
func (g *Game) Pending() int                { return g.waves.Pending() }
func (g *Game) Spawn() grid.Cell            { return g.opts.Spawn }
func (g *Game) Goal() grid.Cell             { return g.opts.Goal }
func (g *Game) Exits() []grid.Cell          { return append([]grid.Cell{g.opts.Goal}, g.opts.Exits...) }
func (g *Game) Enemies() []*component.Enemy { return append([]*component.Enemy(nil), g.ECS.Enemies...) }
func (g *Game) Towers() []*component.Tower  { return append([]*component.Tower(nil), g.ECS.Towers...) }
func (g *Game) Projectiles() []*component.Projectile {
	return append([]*component.Projectile(nil), g.ECS.Projectiles...)
}

// IsObstacle reports whether c is occupied by something that is not a tower.
func (g *Game) IsObstacle(c grid.Cell) bool {
	_, tower := g.ECS.TowerAt(c)
	return g.grid.IsOccupied(c) && !tower
}
