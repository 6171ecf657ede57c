// internal/state/game_state.go
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/ui"
	"grid-tower-defense/pkg/grid"
	"grid-tower-defense/pkg/render"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

var shopKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	log      *logrus.Entry
	fontFace font.Face

	renderer  *render.GridRenderer
	hud       *ui.HUD
	shop      *ui.Shop
	infoPanel *ui.InfoPanel

	snapshot app.Snapshot
	preview  render.Preview
	cursor   image.Point
}

// ScreenSize is the window size needed for a rows x cols board.
func ScreenSize(rows, cols int, cellSize float64) (int, int) {
	return cols*int(cellSize) + config.SidebarWidth, rows*int(cellSize) + config.HUDHeight
}

func NewGameState(sm *StateMachine, gameLogic *app.Game, log *logrus.Entry) *GameState {
	face := fontFace()
	g := gameLogic.Grid()
	width, height := ScreenSize(g.Rows, g.Cols, g.CellSize)
	boardWidth := g.Cols * int(g.CellSize)

	// Создаем и заполняем структуру с цветами для рендерера
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		GridLineColor:   config.GridLineColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	unitColors := &render.UnitColors{
		PathColor:        config.PathColor,
		TowerStrokeColor: config.TowerStrokeColor,
		HealthBarColor:   config.HealthBarColor,
		HealthBackColor:  config.HealthBackColor,
		ProjectileColor:  config.ProjectileColor,
		PreviewOKColor:   config.PreviewOKColor,
		PreviewBadColor:  config.PreviewBadColor,
	}
	layout := render.Layout{Rows: g.Rows, Cols: g.Cols, CellSize: g.CellSize, OffsetY: config.HUDHeight}

	snap := gameLogic.Snapshot()
	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		log:       log.WithField("component", "ebiten"),
		fontFace:  face,
		renderer:  render.NewGridRenderer(layout, width, height, mapColors, unitColors, face),
		hud:       ui.NewHUD(width, config.HUDHeight, face, snap),
		shop:      ui.NewShop(gameLogic.Catalog(), boardWidth, config.HUDHeight, config.SidebarWidth, face),
		infoPanel: ui.NewInfoPanel(face, boardWidth, height),
		snapshot:  snap,
	}
	gs.renderer.RenderMapImage(snap) // <-- Явный вызов отрисовки карты
	gs.watch()
	return gs
}

func (g *GameState) watch() {
	g.game.On(event.WaveStarted, func(e event.Event) {
		g.hud.Flash(fmt.Sprintf("wave %d", e.Data.(int)))
	})
	g.game.On(event.Cleared, func(e event.Event) {
		g.hud.Flash(fmt.Sprintf("wave %d cleared, N for the next one", e.Data.(int)))
	})
	g.game.On(event.EnemyEscape, func(e event.Event) {
		g.hud.Flash(fmt.Sprintf("%d escaped", len(e.Data.([]*component.Enemy))))
	})
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.cursor = image.Pt(ebiten.CursorPosition())

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.game.Phase() == component.PhaseRunning {
			g.game.Pause()
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(g.cursor, ebiten.MouseButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleClick(g.cursor, ebiten.MouseButtonRight)
	}

	for i := 0; i < g.hud.Speed.Steps(); i++ {
		if !g.game.Step() {
			break
		}
	}
	g.refresh(deltaTime)

	if g.game.Phase().Over() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.nextWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copySnapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.hud.Speed.Toggle()
	}
	for i, k := range shopKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.shop.Select(i)
		}
	}
}

// handleClick обрабатывает клики: сначала UI, потом поле
func (g *GameState) handleClick(p image.Point, button ebiten.MouseButton) {
	if button == ebiten.MouseButtonLeft {
		switch {
		case g.hud.Indicator.IsClicked(p):
			g.hud.Indicator.HandleClick()
			g.game.TogglePause()
			return
		case g.hud.Speed.IsClicked(p):
			g.hud.Speed.Toggle()
			return
		case g.infoPanel.Contains(p):
			if a, ok := g.infoPanel.HandleClick(p); ok {
				g.apply(a)
			}
			return
		case g.shop.Contains(p):
			g.shop.HandleClick(p)
			return
		}
	}

	cell, ok := g.renderer.Layout().ScreenToCell(p.X, p.Y)
	if !ok {
		return
	}
	if button == ebiten.MouseButtonRight {
		g.report(g.game.Remove(cell))
		g.infoPanel.Hide()
		return
	}
	if _, taken := g.towerAt(cell); taken {
		g.infoPanel.SetTarget(cell)
		return
	}
	g.infoPanel.Hide()
	g.report(g.game.Place(cell, g.shop.Selected()))
}

func (g *GameState) towerAt(cell grid.Cell) (app.TowerView, bool) {
	for _, t := range g.snapshot.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func (g *GameState) apply(a ui.Action) {
	switch a.Kind {
	case ui.ActionLevelUp:
		g.report(g.game.LevelUp(a.Cell))
	case ui.ActionSell:
		g.report(g.game.Remove(a.Cell))
		g.infoPanel.Hide()
	case ui.ActionUpgrade:
		g.report(g.game.Upgrade(a.Cell, a.Tower))
	}
}

func (g *GameState) report(t *component.Tower, err error) {
	if err != nil {
		g.fail(err)
		return
	}
	g.log.WithFields(logrus.Fields{"tower": t.Def.ID, "level": t.Level, "cell": t.Cell.String()}).Debug("tower command")
}

func (g *GameState) fail(err error) {
	switch {
	case errors.Is(err, app.ErrPathBlocked):
		g.hud.Flash("that would block the path")
	case errors.Is(err, app.ErrInsufficientCoins):
		g.hud.Flash("not enough coins")
	default:
		g.hud.Flash(err.Error())
	}
	g.log.WithError(err).Debug("command rejected")
}

func (g *GameState) nextWave() {
	if _, err := g.game.NextWave(); err != nil {
		g.fail(err)
	}
}

func (g *GameState) restart() {
	if err := g.game.Reset(); err != nil {
		g.fail(err)
		return
	}
	g.snapshot = g.game.Snapshot()
	g.renderer.RenderMapImage(g.snapshot)
	g.hud.Reset(g.snapshot)
	g.infoPanel.Hide()
	g.hud.Flash("restarted")
}

// copySnapshot кладёт JSON текущего снапшота в буфер обмена.
func (g *GameState) copySnapshot() {
	data, err := json.MarshalIndent(g.snapshot, "", "  ")
	if err != nil {
		g.fail(err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
		g.hud.Flash("clipboard unavailable")
		return
	}
	g.hud.Flash("snapshot copied")
}

func (g *GameState) refresh(deltaTime float64) {
	g.snapshot = g.game.Snapshot()
	g.hud.Update(g.snapshot, deltaTime)
	g.shop.Refresh(g.game.Catalog(), g.snapshot.Coins)
	g.infoPanel.Update()
	g.infoPanel.Refresh(g.snapshot, g.game.Catalog())

	g.preview = render.Preview{}
	layout := g.renderer.Layout()
	if cell, ok := layout.ScreenToCell(g.cursor.X, g.cursor.Y); ok && !g.infoPanel.Contains(g.cursor) {
		if _, taken := g.towerAt(cell); !taken {
			valid, path := g.game.AttemptPlacement(g.game.Grid().CellToPixelCentre(cell))
			g.preview = render.Preview{Cell: cell, Valid: valid, Shown: true, Path: path}
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snapshot, g.game.Catalog(), g.preview)
	g.hud.Draw(screen, g.snapshot)
	g.shop.Draw(screen, g.cursor)
	g.infoPanel.Draw(screen, g.cursor)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
