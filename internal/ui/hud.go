// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const messageTTL = 2 * time.Second

// HUD рисует верхнюю полосу: фаза, волна, монеты, жизни, очки, скорость.
type HUD struct {
	Width, Height int

	Coins *Counter
	Lives *Counter
	Score *Counter

	Indicator *StateIndicator
	Speed     *SpeedButton
	Wave      *WaveIndicator

	fontFace  font.Face
	message   string
	messageAt time.Time
}

func NewHUD(width, height int, face font.Face, s app.Snapshot) *HUD {
	mid := float32(height) / 2
	return &HUD{
		Width:     width,
		Height:    height,
		Coins:     NewCounter(s.Coins, config.CounterTweenSec),
		Lives:     NewCounter(s.Lives, config.CounterTweenSec),
		Score:     NewCounter(s.Score, config.CounterTweenSec),
		Indicator: NewStateIndicator(mid, mid, mid*0.6),
		Speed:     NewSpeedButton(float32(width)-mid, mid, mid*0.7, []color.RGBA{config.RunningColor, {180, 140, 20, 255}, config.PausedColor}),
		Wave:      NewWaveIndicator(width/2, height/2+5, config.TextLightColor),
		fontFace:  face,
	}
}

// Update feeds the latest snapshot into the tweened counters.
func (h *HUD) Update(s app.Snapshot, dt float64) {
	h.Coins.Set(s.Coins)
	h.Lives.Set(s.Lives)
	h.Score.Set(s.Score)
	h.Coins.Update(dt)
	h.Lives.Update(dt)
	h.Score.Update(dt)
}

// Reset jumps the counters without animation, after a match restart.
func (h *HUD) Reset(s app.Snapshot) {
	h.Coins.Snap(s.Coins)
	h.Lives.Snap(s.Lives)
	h.Score.Snap(s.Score)
}

// Flash shows msg under the HUD for a couple of seconds.
func (h *HUD) Flash(msg string) {
	h.message = msg
	h.messageAt = time.Now()
}

func (h *HUD) Message() string {
	if time.Since(h.messageAt) > messageTTL {
		return ""
	}
	return h.message
}

func (h *HUD) Contains(p image.Point) bool {
	return p.Y >= 0 && p.Y < h.Height
}

func PhaseColor(phase string) color.RGBA {
	switch phase {
	case component.PhaseRunning.String():
		return config.RunningColor
	case component.PhaseWon.String():
		return config.EntryColor
	case component.PhaseLost.String():
		return config.ExitColor
	}
	return config.PausedColor
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.Width), float32(h.Height), color.RGBA{25, 35, 45, 255}, false)
	h.Indicator.Draw(screen, PhaseColor(s.Phase))
	h.Speed.Draw(screen, h.fontFace)
	h.Wave.Draw(screen, h.fontFace, s.Wave, s.MaxWave)

	x := int(h.Indicator.X+h.Indicator.Radius) + 12
	y := h.Height/2 + 5
	stats := fmt.Sprintf("$%d   lives %d   score %d", h.Coins.Value(), h.Lives.Value(), h.Score.Value())
	text.Draw(screen, stats, h.fontFace, x, y, config.TextLightColor)

	if msg := h.Message(); msg != "" {
		text.Draw(screen, msg, h.fontFace, x, h.Height+16, config.TextLightColor)
	}
}
