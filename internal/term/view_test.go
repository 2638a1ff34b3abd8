package term

import (
	"strings"
	"testing"

	"go-grid-defense/internal/app"
	"go-grid-defense/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	game, err := app.NewGame(grid.NewBoard(5, 5), nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	return NewView(screen, game), screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func tileRune(v *View, screen tcell.Screen, x, y int) rune {
	sx, sy := v.cellOf(x, y)
	return runeAt(screen, sx, sy)
}

func textAt(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestDrawBoard(t *testing.T) {
	v, screen := newTestView(t)
	v.Draw()

	if status := textAt(screen, 0, 40); !strings.HasPrefix(status, "Default") {
		t.Fatalf("status line = %q", status)
	}
	cases := []struct {
		x, y int
		want rune
	}{
		{2, 2, 'D'},
		{0, 0, 'S'},
		{2, 0, '↑'},
		{2, 4, '↓'},
		{0, 2, '→'},
		{4, 2, '←'},
	}
	for _, c := range cases {
		if got := tileRune(v, screen, c.x, c.y); got != c.want {
			t.Errorf("tile (%d, %d) drawn as %q, want %q", c.x, c.y, got, c.want)
		}
	}

	_, _, style, _ := screen.GetContent(v.cellOf(2, 2))
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("cursor tile should be drawn reversed")
	}
}

func TestDrawEnemies(t *testing.T) {
	v, screen := newTestView(t)
	v.game.Update(0.01)
	if v.game.Enemies.Len() != 1 {
		t.Fatalf("enemies = %d, want 1", v.game.Enemies.Len())
	}
	v.Draw()
	if got := tileRune(v, screen, 0, 0); got != '@' {
		t.Fatalf("spawn tile drawn as %q, want '@'", got)
	}
}

func TestEditingWithCursor(t *testing.T) {
	v, screen := newTestView(t)

	v.moveCursor(-1, 0)
	if !v.handleRune('w') {
		t.Fatal("editing should not quit")
	}
	if v.Cursor() != v.game.Board.Tile(1, 2) || v.Cursor().Content() != grid.Wall {
		t.Fatal("w should place a wall under the cursor")
	}
	v.Draw()
	if got := tileRune(v, screen, 1, 2); got != '#' {
		t.Fatalf("wall drawn as %q", got)
	}

	v.handleRune('t')
	if v.Cursor().Content() != grid.Tower || len(v.game.TowerTiles()) != 1 {
		t.Fatal("t should turn the wall into a tower")
	}

	for i := 0; i < 10; i++ {
		v.moveCursor(1, 1)
	}
	if v.Cursor() != v.game.Board.Tile(4, 4) {
		t.Fatal("cursor should stay on the board")
	}

	v.handleRune(' ')
	if !v.game.IsPaused() {
		t.Fatal("space should pause")
	}
	v.handleRune('f')
	if v.game.SpeedIndex() != 1 {
		t.Fatal("f should cycle the speed")
	}
	if v.handleRune('q') {
		t.Fatal("q should quit")
	}
}
