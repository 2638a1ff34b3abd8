// internal/term/view.go
package term

import (
	"fmt"

	"go-grid-defense/internal/app"
	"go-grid-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

// Each tile takes cellWidth columns so the board keeps a roughly square look.
const (
	cellWidth = 2
	boardTop  = 2
	boardLeft = 1
)

var arrows = [...]rune{
	grid.North: '↑',
	grid.East:  '→',
	grid.South: '↓',
	grid.West:  '←',
}

var (
	styleArrow       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall        = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTower       = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleSpawn       = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleDestination = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View draws a game onto a terminal screen and turns key presses into game commands.
type View struct {
	screen tcell.Screen
	game   *app.Game

	// Курсор в координатах клеток
	cursorX, cursorY int
}

func NewView(screen tcell.Screen, game *app.Game) *View {
	return &View{
		screen:  screen,
		game:    game,
		cursorX: game.Board.Width() / 2,
		cursorY: game.Board.Height() / 2,
	}
}

// Cursor returns the tile under the cursor.
func (v *View) Cursor() *grid.Tile { return v.game.Board.Tile(v.cursorX, v.cursorY) }

// cellOf maps board coordinates to the screen; north is up.
func (v *View) cellOf(x, y int) (int, int) {
	return boardLeft + x*cellWidth, boardTop + v.game.Board.Height() - 1 - y
}

// Glyph returns the rune and style used for a tile without enemies.
func Glyph(tile *grid.Tile) (rune, tcell.Style) {
	switch tile.Content() {
	case grid.Wall:
		return '#', styleWall
	case grid.Tower:
		return 'T', styleTower
	case grid.SpawnPoint:
		return 'S', styleSpawn
	case grid.Destination:
		return 'D', styleDestination
	}
	if !tile.HasPath() {
		return '·', styleArrow
	}
	return arrows[tile.PathDirection()], styleArrow
}

// Draw renders the status line, the board and the enemies.
func (v *View) Draw() {
	v.screen.Clear()
	v.drawText(0, 0, v.status(), styleStatus)

	board := v.game.Board
	for _, tile := range board.Tiles() {
		r, style := Glyph(tile)
		x, y := v.cellOf(tile.X, tile.Y)
		v.screen.SetContent(x, y, r, nil, style)
	}

	for _, e := range v.game.Enemies.Items() {
		if !e.Alive() {
			continue
		}
		tile := board.TileAt(e.WorldPosition())
		if tile == nil {
			continue
		}
		x, y := v.cellOf(tile.X, tile.Y)
		v.screen.SetContent(x, y, '@', nil, styleEnemy)
	}

	for _, t := range v.game.CombatSystem.Towers() {
		if t.Target != nil && t.Target.Alive() {
			x, y := v.cellOf(t.Tile.X, t.Tile.Y)
			v.screen.SetContent(x, y, '*', nil, styleTower)
		}
	}

	cx, cy := v.cellOf(v.cursorX, v.cursorY)
	mainc, combc, style, _ := v.screen.GetContent(cx, cy)
	v.screen.SetContent(cx, cy, mainc, combc, style.Reverse(true))

	help := "arrows move  w wall  t tower  d destination  s spawn  space pause  f speed  n new  q quit"
	v.drawText(0, boardTop+board.Height()+1, help, styleArrow)
	v.screen.Show()
}

func (v *View) status() string {
	g := v.game
	s := fmt.Sprintf("%s  wave %d/%d  health %d  enemies %d  x%g",
		g.Scenario.Name(), g.Scenario.Wave(), g.Scenario.WaveCount(), g.PlayerHealth, g.Enemies.Len(), g.SpeedMultiplier())
	if g.IsPaused() {
		s += "  PAUSED"
	}
	if o := g.Outcome(); o != app.Playing {
		s += "  " + o.String()
	}
	return s
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleKey applies a key press. It returns false when the player asked to quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursor(0, 1)
	case tcell.KeyDown:
		v.moveCursor(0, -1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	g := v.game
	switch r {
	case 'q':
		return false
	case 'w':
		g.ToggleWall(v.Cursor())
	case 't':
		g.ToggleTower(v.Cursor())
	case 'd':
		g.ToggleDestination(v.Cursor())
	case 's':
		g.ToggleSpawnPoint(v.Cursor())
	case ' ':
		g.TogglePause()
	case 'f':
		g.CycleSpeed()
	case 'n':
		if err := g.BeginNewGame(); err != nil {
			v.drawText(0, 1, err.Error(), styleEnemy)
		}
	}
	return true
}

func (v *View) moveCursor(dx, dy int) {
	v.cursorX = min(max(v.cursorX+dx, 0), v.game.Board.Width()-1)
	v.cursorY = min(max(v.cursorY+dy, 0), v.game.Board.Height()-1)
}
