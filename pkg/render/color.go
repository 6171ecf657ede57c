// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PassableColor   color.RGBA
	ImpassableColor color.RGBA
	GridLineColor   color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// UnitColors — цвета динамических объектов поверх карты
type UnitColors struct {
	PathColor        color.RGBA
	TowerStrokeColor color.RGBA
	HealthBarColor   color.RGBA
	HealthBackColor  color.RGBA
	ProjectileColor  color.RGBA
	PreviewOKColor   color.RGBA
	PreviewBadColor  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TextColorOn picks light or dark text for a background.
func TextColorOn(bg color.RGBA, colors *MapColors) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return colors.TextDarkColor
	}
	return colors.TextLightColor
}
