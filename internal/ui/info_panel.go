// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	buttonWidth    = 130
	buttonHeight   = 28
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionLevelUp
	ActionSell
	ActionUpgrade
)

// Action описывает то, что игрок попросил сделать с выбранной башней
type Action struct {
	Kind  ActionKind
	Cell  grid.Cell
	Tower string // цель апгрейда
}

type panelButton struct {
	Button
	action Action
}

// InfoPanel показывает выбранную башню и кнопки действий над ней.
type InfoPanel struct {
	IsVisible bool
	Target    grid.Cell

	fontFace font.Face
	width    float64
	height   float64
	currentY float64
	targetY  float64

	tower   *app.TowerView
	def     *defs.TowerDefinition
	buttons []panelButton
}

func NewInfoPanel(face font.Face, width, height int) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		width:    float64(width),
		height:   float64(height),
		currentY: float64(height),
		targetY:  float64(height),
	}
}

func (p *InfoPanel) SetTarget(c grid.Cell) {
	p.Target = c
	p.IsVisible = true
	p.targetY = p.height - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.height
}

// Refresh re-reads the selected tower from s and lays out its buttons. The
// panel hides itself when the tower is gone.
func (p *InfoPanel) Refresh(s app.Snapshot, catalog *defs.Catalog) {
	p.tower, p.def, p.buttons = nil, nil, p.buttons[:0]
	if !p.IsVisible {
		return
	}
	for i := range s.Towers {
		if s.Towers[i].Cell == p.Target {
			t := s.Towers[i]
			p.tower = &t
			break
		}
	}
	if p.tower == nil {
		p.Hide()
		return
	}
	def, ok := catalog.Tower(p.tower.Kind)
	if !ok {
		return
	}
	p.def = def

	x := int(p.width) - panelMargin - 15 - buttonWidth
	y := int(p.currentY) + panelMargin + 10
	add := func(label string, enabled bool, a Action) {
		b := NewButton(image.Rect(x, y, x+buttonWidth, y+buttonHeight), label)
		b.Enabled = enabled
		p.buttons = append(p.buttons, panelButton{Button: b, action: a})
		y += buttonHeight + 4
		if y+buttonHeight > int(p.currentY)+panelHeight-panelMargin {
			y = int(p.currentY) + panelMargin + 10
			x -= buttonWidth + 8
		}
	}
	add(fmt.Sprintf("Level up $%d", def.LevelCost), s.Coins >= def.LevelCost,
		Action{Kind: ActionLevelUp, Cell: p.Target})
	refund := int(float64(p.tower.Value) * config.SellRatio)
	add(fmt.Sprintf("Sell +$%d", refund), true, Action{Kind: ActionSell, Cell: p.Target})
	for _, id := range def.Upgrades {
		up, ok := catalog.Tower(id)
		if !ok {
			continue
		}
		add(fmt.Sprintf("%s $%d", up.Name, up.BaseCost), s.Coins >= up.BaseCost,
			Action{Kind: ActionUpgrade, Cell: p.Target, Tower: id})
	}
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= p.height {
			p.IsVisible = false
		}
	}
}

// Contains reports whether pt lies over the visible panel.
func (p *InfoPanel) Contains(pt image.Point) bool {
	return p.IsVisible && float64(pt.Y) >= p.currentY
}

// HandleClick returns the action under pt, if any enabled button is there.
func (p *InfoPanel) HandleClick(pt image.Point) (Action, bool) {
	if !p.IsVisible {
		return Action{}, false
	}
	for _, b := range p.buttons {
		if b.Enabled && b.Contains(pt) {
			return b.action, true
		}
	}
	return Action{}, false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursor image.Point) {
	if !p.IsVisible && p.currentY >= p.height {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		int(p.width)-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.tower == nil || p.def == nil {
		return
	}

	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + 20
	text.Draw(screen, fmt.Sprintf("%s  L%d", p.def.Name, p.tower.Level), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d %s", p.def.BaseDamage*p.tower.Level, p.def.DamageType), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %s", p.def.Range.Kind), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Cooldown: %d  Value: %d", p.def.CooldownSteps, p.tower.Value), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, p.tower.Phase, p.fontFace, x, y, config.TextLightColor)

	for i := range p.buttons {
		p.buttons[i].Draw(screen, p.fontFace, cursor)
	}
}
