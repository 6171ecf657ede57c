// internal/state/over_state.go
package state

import (
	"fmt"

	"grid-tower-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог матча. R начинает новую игру, C копирует снапшот в буфер.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: gs}
}

func (s *GameOverState) Enter() {
	snap := s.game.snapshot
	s.game.log.WithField("score", snap.Score).Info("game over screen")
}

func (s *GameOverState) Update(deltaTime float64) {
	s.game.hud.Update(s.game.snapshot, deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.game.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.game.restart()
		s.sm.SetState(s.game)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	title := "DEFEAT"
	if s.game.game.Phase() == component.PhaseWon {
		title = "VICTORY"
	}
	snap := s.game.snapshot
	drawOverlay(screen, fmt.Sprintf("%s  wave %d  score %d", title, snap.Wave, snap.Score), "R to play again, C to copy the snapshot")
}

func (s *GameOverState) Exit() {}
