// internal/state/state.go
package state

import (
	"time"

	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// State описывает экран приложения: меню, игра, пауза, итог
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и сама является ebiten.Game.
type StateMachine struct {
	current        State
	width, height  int
	lastUpdateTime time.Time
}

func NewStateMachine() *StateMachine {
	return &StateMachine{width: config.ScreenWidth, height: config.ScreenHeight}
}

// SetSize задаёт логический размер экрана, который отдаёт Layout.
func (sm *StateMachine) SetSize(width, height int) {
	sm.width, sm.height = width, height
}

// SetState выходит из текущего состояния и входит в новое; nil допустим.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

// Step обновляет текущее состояние, ограничивая шаг времени сверху.
func (sm *StateMachine) Step(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Update implements ebiten.Game.
func (sm *StateMachine) Update() error {
	now := time.Now()
	if sm.lastUpdateTime.IsZero() {
		sm.lastUpdateTime = now
	}
	sm.Step(now.Sub(sm.lastUpdateTime).Seconds())
	sm.lastUpdateTime = now
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func (sm *StateMachine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return sm.width, sm.height
}
