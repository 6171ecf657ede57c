// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// speedSteps: сколько тиков симуляции делается за один кадр
var speedSteps = []int{1, 2, 4}

// SpeedButton переключает скорость игры по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Steps returns the ticks to run per frame.
func (b *SpeedButton) Steps() int {
	return speedSteps[b.CurrentState]
}

func (b *SpeedButton) Toggle() {
	b.CurrentState = (b.CurrentState + 1) % len(speedSteps)
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) IsClicked(p image.Point) bool {
	dx := float32(p.X) - b.X
	dy := float32(p.Y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := color.RGBA{70, 130, 180, 255}
	if len(b.StateColors) > 0 {
		c = b.StateColors[b.CurrentState%len(b.StateColors)]
	}
	vector.DrawFilledCircle(screen, b.X, b.Y, size, c, true)
	vector.StrokeCircle(screen, b.X, b.Y, size, 2, color.White, true)

	label := fmt.Sprintf("x%d", b.Steps())
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, int(b.X)-bounds.Dx()/2, int(b.Y)+bounds.Dy()/2, color.White)
}
