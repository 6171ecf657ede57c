package state

import (
	"testing"

	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()                    { *r.log = append(*r.log, "enter "+r.name) }
func (r *recordingState) Update(deltaTime float64)  { *r.log = append(*r.log, "update "+r.name) }
func (r *recordingState) Draw(screen *ebiten.Image) { *r.log = append(*r.log, "draw "+r.name) }
func (r *recordingState) Exit()                     { *r.log = append(*r.log, "exit "+r.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Step(0.1) // без состояния ничего не происходит
	sm.Draw(nil)

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Step(0.1)
	sm.SetState(b)
	assert.Same(t, b, sm.Current())
	sm.Draw(nil)
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "draw b", "exit b"}, log)
	assert.Nil(t, sm.Current())
}

type dtState struct {
	recordingState
	got float64
}

func (d *dtState) Update(deltaTime float64) { d.got = deltaTime }

func TestStepClampsDeltaTime(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	s := &dtState{recordingState: recordingState{name: "dt", log: &log}}
	sm.SetState(s)
	sm.Step(5)
	assert.Equal(t, config.MaxDeltaTime, s.got)
	sm.Step(0.02)
	assert.Equal(t, 0.02, s.got)
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	sm := NewStateMachine()
	w, h := sm.Layout(1, 1)
	assert.Equal(t, config.ScreenWidth, w)
	assert.Equal(t, config.ScreenHeight, h)
	sm.SetSize(300, 200)
	w, h = sm.Layout(1, 1)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(config.GridRows, config.GridCols, config.CellSize)
	assert.Equal(t, config.ScreenWidth, w)
	assert.Equal(t, config.ScreenHeight, h)
}
