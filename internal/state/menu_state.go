// internal/state/menu_state.go
package state

import (
	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func fontFace() font.Face {
	return basicfont.Face7x13
}

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	game *app.Game
	log  *logrus.Entry
}

func NewMenuState(sm *StateMachine, game *app.Game, log *logrus.Entry) *MenuState {
	return &MenuState{sm: sm, game: game, log: log}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.log))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawOverlay(screen, "GRID TOWER DEFENSE", "Space to start, N sends a wave, 1-9 pick a tower")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
