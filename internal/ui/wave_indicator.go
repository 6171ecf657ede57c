// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
}

func NewWaveIndicator(x, y int, c color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        c,
		BossColor:    color.RGBA{220, 40, 40, 255},
		OutlineColor: color.RGBA{0, 0, 0, 255},
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Волны с боссом (каждая десятая) красные.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave, maxWave int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave)
	if maxWave > 0 {
		label += " / " + toRoman(maxWave)
	}
	c := i.Color
	if wave%10 == 0 {
		c = i.BossColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, c)
}
