// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Preview: подсветка клетки под курсором и маршрута после постройки
type Preview struct {
	Cell  grid.Cell
	Valid bool
	Shown bool
	Path  []grid.Cell
}

type GridRenderer struct {
	layout     Layout
	colors     *MapColors
	unitColors *UnitColors
	fillImg    *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	fontFace   font.Face
	mapImage   *ebiten.Image // Поле для предрендеренной карты
	width      int
	height     int
}

func NewGridRenderer(layout Layout, width, height int, colors *MapColors, unitColors *UnitColors, face font.Face) *GridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &GridRenderer{
		layout:     layout,
		colors:     colors,
		unitColors: unitColors,
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 8),
		fillIs:     make([]uint16, 0, 8),
		fontFace:   face,
		mapImage:   ebiten.NewImage(width, height),
		width:      width,
		height:     height,
	}
}

func (r *GridRenderer) Layout() Layout { return r.layout }

// RenderMapImage создаёт предрендеренное изображение задника: клетки,
// препятствия, вход, выходы и линии сетки. Вызывается заново после Reset.
func (r *GridRenderer) RenderMapImage(s app.Snapshot) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	obstacles := make(map[grid.Cell]struct{}, len(s.Obstacles))
	for _, c := range s.Obstacles {
		obstacles[c] = struct{}{}
	}
	exits := make(map[grid.Cell]struct{}, len(s.Exits))
	for _, c := range s.Exits {
		exits[c] = struct{}{}
	}

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			c := grid.Cell{Row: row, Col: col}
			fill := r.colors.PassableColor
			if _, ok := obstacles[c]; ok {
				fill = r.colors.ImpassableColor
			} else if c == s.Spawn {
				fill = r.colors.EntryColor
			} else if _, ok := exits[c]; ok {
				fill = r.colors.ExitColor
			}
			x, y, size := r.layout.CellRect(c)
			vector.DrawFilledRect(r.mapImage, x, y, size, size, fill, false)
		}
	}

	// линии сетки поверх заливки
	for _, seg := range grid.New(s.Rows, s.Cols, s.CellSize).BorderCoordinates() {
		x0, y0 := r.layout.ToScreen(seg.From)
		x1, y1 := r.layout.ToScreen(seg.To)
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, 1, r.colors.GridLineColor, false)
	}

	r.drawLabel(r.mapImage, s.Spawn, "S", r.colors.EntryColor)
	r.drawLabel(r.mapImage, s.Goal, "G", r.colors.ExitColor)
}

func (r *GridRenderer) drawLabel(target *ebiten.Image, c grid.Cell, label string, bg color.RGBA) {
	x, y, size := r.layout.CellRect(c)
	bounds := text.BoundString(r.fontFace, label)
	tx := int(x+size/2) - bounds.Dx()/2
	ty := int(y+size/2) + bounds.Dy()/2
	text.Draw(target, label, r.fontFace, tx, ty, TextColorOn(bg, r.colors))
}

// Draw рисует задник одним вызовом, затем маршрут, башни, врагов и снаряды.
func (r *GridRenderer) Draw(screen *ebiten.Image, s app.Snapshot, catalog *defs.Catalog, preview Preview) {
	screen.DrawImage(r.mapImage, nil)

	path, pathColor := s.Path, r.unitColors.PathColor
	if preview.Shown && preview.Valid && preview.Path != nil {
		path, pathColor = preview.Path, r.unitColors.PreviewOKColor
	}
	r.drawPath(screen, s.Spawn, path, pathColor)

	for _, t := range s.Towers {
		r.drawTower(screen, t, catalog)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e, s.CellSize, catalog)
	}
	for _, p := range s.Projectiles {
		x, y := r.layout.ToScreen(grid.Point{X: p.X, Y: p.Y})
		radius := float32(s.CellSize * 0.08)
		if p.Kind == "pulse" {
			radius *= 1.5
		}
		vector.DrawFilledCircle(screen, x, y, radius, r.unitColors.ProjectileColor, true)
	}

	if preview.Shown {
		x, y, size := r.layout.CellRect(preview.Cell)
		c := r.unitColors.PreviewBadColor
		if preview.Valid {
			c = r.unitColors.PreviewOKColor
		}
		vector.DrawFilledRect(screen, x, y, size, size, c, false)
	}
}

func (r *GridRenderer) drawPath(screen *ebiten.Image, from grid.Cell, path []grid.Cell, c color.RGBA) {
	prev := from
	half := float32(r.layout.CellSize / 2)
	for _, cell := range path {
		x0, y0, _ := r.layout.CellRect(prev)
		x1, y1, _ := r.layout.CellRect(cell)
		vector.StrokeLine(screen, x0+half, y0+half, x1+half, y1+half, r.colors.StrokeWidth*2, c, true)
		prev = cell
	}
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t app.TowerView, catalog *defs.Catalog) {
	x, y, size := r.layout.CellRect(t.Cell)
	fill := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	radius := float32(0.4)
	if def, ok := catalog.Tower(t.Kind); ok {
		fill = def.Visuals.Color
		if def.Visuals.RadiusFactor > 0 {
			radius = float32(def.Visuals.RadiusFactor)
		}
	}
	cx, cy := x+size/2, y+size/2
	vector.DrawFilledCircle(screen, cx, cy, size*radius, fill, true)
	vector.StrokeCircle(screen, cx, cy, size*radius, r.colors.StrokeWidth, r.unitColors.TowerStrokeColor, true)

	r.drawBarrel(screen, float64(cx), float64(cy), float64(size*radius), t.Rotation, DarkenColor(fill))

	if t.Level > 1 {
		label := fmt.Sprintf("%d", t.Level)
		text.Draw(screen, label, r.fontFace, int(x)+2, int(y+size)-2, TextColorOn(fill, r.colors))
	}
}

// drawBarrel заливает треугольник направления через DrawTriangles, как
// заливались гексы.
func (r *GridRenderer) drawBarrel(screen *ebiten.Image, cx, cy, size, rotation float64, c color.RGBA) {
	pts := Barrel(cx, cy, size, rotation)
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	path.LineTo(float32(pts[1].X), float32(pts[1].Y))
	path.LineTo(float32(pts[2].X), float32(pts[2].Y))
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView, cellSize float64, catalog *defs.Catalog) {
	fill := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	if def, ok := catalog.Enemy(e.Kind); ok {
		fill = def.Visuals.Color
	}
	cx, cy := r.layout.ToScreen(grid.Point{X: e.X, Y: e.Y})
	side := float32(e.Footprint * cellSize)
	vector.DrawFilledRect(screen, cx-side/2, cy-side/2, side, side, fill, true)
	vector.StrokeRect(screen, cx-side/2, cy-side/2, side, side, 1, r.unitColors.TowerStrokeColor, true)

	if e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	frac := float32(e.Health) / float32(e.MaxHealth)
	barY := cy - side/2 - 6
	vector.DrawFilledRect(screen, cx-side/2, barY, side, 4, r.unitColors.HealthBackColor, false)
	vector.DrawFilledRect(screen, cx-side/2, barY, side*frac, 4, r.unitColors.HealthBarColor, false)
}
