// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Enabled    bool
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) Button {
	return Button{
		Rect:       rect,
		Text:       label,
		Enabled:    true,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    color.RGBA{60, 70, 90, 255},
		HoverColor: color.RGBA{80, 100, 130, 255},
	}
}

// Contains проверяет, попала ли точка в кнопку.
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursor image.Point) {
	bg := b.BgColor
	if !b.Enabled {
		bg = color.RGBA{50, 50, 55, 255}
	} else if b.Contains(cursor) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{120, 130, 150, 255}, true)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
