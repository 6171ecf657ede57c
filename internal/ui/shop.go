// internal/ui/shop.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"grid-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const shopRowHeight = 30

// Shop рисует боковую панель с башнями, которые можно купить.
type Shop struct {
	X, Y, Width int
	ids         []string
	buttons     []Button
	selected    int
	fontFace    font.Face
}

func NewShop(catalog *defs.Catalog, x, y, width int, face font.Face) *Shop {
	s := &Shop{X: x, Y: y, Width: width, fontFace: face, ids: catalog.ShopIDs()}
	for i, id := range s.ids {
		def, _ := catalog.Tower(id)
		top := y + 24 + i*(shopRowHeight+4)
		b := NewButton(image.Rect(x+10, top, x+width-10, top+shopRowHeight),
			fmt.Sprintf("%d  %s  $%d", i+1, def.Name, def.BaseCost))
		s.buttons = append(s.buttons, b)
	}
	return s
}

// Selected returns the tower ID to place, or "" for an empty catalog.
func (s *Shop) Selected() string {
	if len(s.ids) == 0 {
		return ""
	}
	return s.ids[s.selected]
}

// Select picks the i-th tower; out-of-range indexes are ignored.
func (s *Shop) Select(i int) bool {
	if i < 0 || i >= len(s.ids) {
		return false
	}
	s.selected = i
	return true
}

// Refresh greys out what the player cannot afford.
func (s *Shop) Refresh(catalog *defs.Catalog, coins int) {
	for i, id := range s.ids {
		def, ok := catalog.Tower(id)
		s.buttons[i].Enabled = ok && coins >= def.BaseCost
	}
}

func (s *Shop) Contains(p image.Point) bool {
	return p.X >= s.X && p.X < s.X+s.Width && p.Y >= s.Y
}

// HandleClick selects the tower under p.
func (s *Shop) HandleClick(p image.Point) bool {
	for i := range s.buttons {
		if s.buttons[i].Contains(p) {
			s.selected = i
			return true
		}
	}
	return false
}

func (s *Shop) Draw(screen *ebiten.Image, cursor image.Point) {
	text.Draw(screen, "Towers", s.fontFace, s.X+10, s.Y+16, color.RGBA{240, 240, 240, 255})
	for i := range s.buttons {
		b := s.buttons[i]
		if i == s.selected {
			b.BgColor = color.RGBA{70, 130, 180, 255}
		}
		b.Draw(screen, s.fontFace, cursor)
	}
}
