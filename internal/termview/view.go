// internal/termview/view.go
package termview

import (
	"context"
	"fmt"
	"time"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Каждая клетка занимает два символа по ширине, чтобы поле не было сплющенным.
const (
	cellWidth = 2
	hudGap    = 2
)

var (
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleSpawn    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarn     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePreview  = tcell.StyleDefault.Foreground(tcell.ColorLime)
)

// View draws a Game on a tcell screen and turns key presses into commands.
// Everything runs on the goroutine that calls Run.
type View struct {
	screen tcell.Screen
	game   *app.Game
	chime  *Chime
	log    *logrus.Entry

	shop     []string
	selected int
	cursor   grid.Cell
	preview  []grid.Cell
	canPlace bool
	message  string
}

func New(screen tcell.Screen, game *app.Game, chime *Chime, log *logrus.Entry) *View {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	v := &View{
		screen: screen,
		game:   game,
		chime:  chime,
		log:    log.WithField("component", "termview"),
		shop:   game.Catalog().ShopIDs(),
	}
	v.watch()
	v.updatePreview()
	return v
}

func (v *View) watch() {
	v.game.On(event.EnemyDeath, func(event.Event) { v.chime.Kill() })
	v.game.On(event.EnemyEscape, func(e event.Event) {
		v.chime.Escape()
		v.message = fmt.Sprintf("%d escaped", len(e.Data.([]*component.Enemy)))
	})
	v.game.On(event.WaveStarted, func(e event.Event) {
		v.chime.Wave()
		v.message = fmt.Sprintf("wave %d", e.Data.(int))
	})
	v.game.On(event.Cleared, func(e event.Event) {
		v.message = fmt.Sprintf("wave %d cleared", e.Data.(int))
	})
	v.game.On(event.GameOver, func(e event.Event) {
		phase := e.Data.(component.MatchPhase)
		v.chime.Over(phase == component.PhaseWon)
		v.message = "match " + phase.String() + ", r to restart"
	})
}

// Run steps the game every tick until ctx ends or the player quits.
func (v *View) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ticker := time.NewTicker(config.TermTickMillis * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, v.screen, events)

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return
			}
			v.Draw()
		case <-ticker.C:
			v.game.Step()
			v.updatePreview()
			v.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or ctx
// ends, whichever comes first.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent applies one input event and reports whether to keep running.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.move(-1, 0)
		case tcell.KeyDown:
			v.move(1, 0)
		case tcell.KeyLeft:
			v.move(0, -1)
		case tcell.KeyRight:
			v.move(0, 1)
		case tcell.KeyEnter:
			v.place()
		case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
			v.remove()
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == 'k':
		v.move(-1, 0)
	case r == 'j':
		v.move(1, 0)
	case r == 'h':
		v.move(0, -1)
	case r == 'l':
		v.move(0, 1)
	case r == ' ':
		v.place()
	case r == 'x':
		v.remove()
	case r == 'u':
		v.report(v.game.LevelUp(v.cursor))
	case r == 'n':
		if _, err := v.game.NextWave(); err != nil {
			v.fail(err)
		}
	case r == 'p':
		v.game.TogglePause()
	case r == 'r':
		if err := v.game.Reset(); err != nil {
			v.fail(err)
		} else {
			v.message = "reset"
		}
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(v.shop) {
			v.selected = i
			v.message = "selected " + v.shop[i]
		}
	}
	v.updatePreview()
	return true
}

func (v *View) move(dr, dc int) {
	next := v.cursor.Add(grid.Cell{Row: dr, Col: dc})
	if v.game.Grid().InBounds(next) {
		v.cursor = next
	}
	v.updatePreview()
}

// Selected returns the tower the player would place.
func (v *View) Selected() string {
	if len(v.shop) == 0 {
		return ""
	}
	return v.shop[v.selected]
}

func (v *View) Cursor() grid.Cell { return v.cursor }
func (v *View) Message() string   { return v.message }

func (v *View) place() {
	v.report(v.game.Place(v.cursor, v.Selected()))
	v.updatePreview()
}

func (v *View) remove() {
	v.report(v.game.Remove(v.cursor))
	v.updatePreview()
}

func (v *View) report(t *component.Tower, err error) {
	if err != nil {
		v.fail(err)
		return
	}
	v.message = fmt.Sprintf("%s L%d at %v", t.Def.ID, t.Level, t.Cell)
}

func (v *View) fail(err error) {
	v.message = err.Error()
	v.log.WithError(err).Debug("command rejected")
}

// updatePreview shows where enemies would walk if a tower went under the
// cursor.
func (v *View) updatePreview() {
	g := v.game.Grid()
	v.canPlace, v.preview = v.game.AttemptPlacement(g.CellToPixelCentre(v.cursor))
}

// Draw renders the board on the left and the status panel on the right.
func (v *View) Draw() {
	v.screen.Clear()
	s := v.game.Snapshot()
	v.drawBoard(s)
	v.drawHUD(s, s.Cols*cellWidth+hudGap)
	v.screen.Show()
}

func (v *View) put(c grid.Cell, r rune, style tcell.Style) {
	v.screen.SetContent(c.Col*cellWidth, c.Row, r, nil, style)
}

func (v *View) drawBoard(s app.Snapshot) {
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			v.put(grid.Cell{Row: r, Col: c}, '.', styleFloor)
		}
	}
	path := s.Path
	style := stylePath
	if v.canPlace && v.preview != nil {
		path, style = v.preview, stylePreview
	}
	for _, c := range path {
		v.put(c, ':', style)
	}
	for _, c := range s.Obstacles {
		v.put(c, '#', styleObstacle)
	}
	for _, c := range s.Exits {
		v.put(c, 'E', styleExit)
	}
	v.put(s.Goal, 'G', styleExit)
	v.put(s.Spawn, 'S', styleSpawn)

	cat := v.game.Catalog()
	for _, t := range s.Towers {
		glyph := '?'
		style := styleText
		if def, ok := cat.Tower(t.Kind); ok {
			if rs := []rune(def.Visuals.Glyph); len(rs) > 0 {
				glyph = rs[0]
			}
			col := def.Visuals.Color
			style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))).Bold(true)
		}
		v.put(t.Cell, glyph, style)
	}
	for _, p := range s.Projectiles {
		if c, ok := cellOf(s, p.X, p.Y); ok {
			v.put(c, '*', styleShot)
		}
	}
	for _, e := range s.Enemies {
		c, ok := cellOf(s, e.X, e.Y)
		if !ok {
			continue
		}
		glyph := '@'
		if def, ok := cat.Enemy(e.Kind); ok {
			if rs := []rune(def.Visuals.Glyph); len(rs) > 0 {
				glyph = rs[0]
			}
		}
		v.put(c, glyph, styleEnemy)
	}

	cursor := tcell.StyleDefault.Reverse(true)
	if !v.canPlace {
		cursor = cursor.Foreground(tcell.ColorRed)
	}
	mainc, _, _, _ := v.screen.GetContent(v.cursor.Col*cellWidth, v.cursor.Row)
	v.screen.SetContent(v.cursor.Col*cellWidth, v.cursor.Row, mainc, nil, cursor)
}

func cellOf(s app.Snapshot, x, y float64) (grid.Cell, bool) {
	if x < 0 || y < 0 {
		return grid.Cell{}, false
	}
	c := grid.Cell{Row: int(y / s.CellSize), Col: int(x / s.CellSize)}
	return c, c.Row < s.Rows && c.Col < s.Cols
}

func (v *View) print(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) drawHUD(s app.Snapshot, x int) {
	phaseStyle := styleText
	if s.Phase == component.PhasePaused.String() || s.Phase == component.PhaseLost.String() {
		phaseStyle = styleWarn
	}
	lines := []struct {
		style tcell.Style
		text  string
	}{
		{phaseStyle, s.Phase},
		{styleText, fmt.Sprintf("wave  %d/%d", s.Wave, s.MaxWave)},
		{styleText, fmt.Sprintf("tick  %d", s.Tick)},
		{styleText, fmt.Sprintf("coins %d", s.Coins)},
		{styleText, fmt.Sprintf("lives %d", s.Lives)},
		{styleText, fmt.Sprintf("score %d", s.Score)},
		{styleDim, fmt.Sprintf("queue %d  enemies %d", s.Pending, len(s.Enemies))},
	}
	y := 0
	for _, l := range lines {
		v.print(x, y, l.style, l.text)
		y++
	}
	y++
	cat := v.game.Catalog()
	for i, id := range v.shop {
		style := styleDim
		marker := " "
		if i == v.selected {
			style, marker = styleText, ">"
		}
		cost := 0
		if def, ok := cat.Tower(id); ok {
			cost = def.BaseCost
		}
		v.print(x, y, style, fmt.Sprintf("%s%d %s $%d", marker, i+1, id, cost))
		y++
	}
	y++
	v.print(x, y, styleDim, "arrows/hjkl move  space place  x sell")
	y++
	v.print(x, y, styleDim, "u level  n wave  p pause  r reset  q quit")
	y += 2
	v.print(x, y, styleText, v.message)
}
