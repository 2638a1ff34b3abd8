// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"math"

	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/system"
	"go-grid-defense/pkg/grid"
	"go-grid-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer draws a grid board top-down with ebiten.
type BoardRenderer struct {
	board       *grid.Board
	proj        utils.Projection
	colors      *BoardColors
	enemyRadius float64
	arrowLength float64
	boardImage  *ebiten.Image // предрендеренное поле, перерисовывается после правок
	dirty       bool
}

func NewBoardRenderer(board *grid.Board, proj utils.Projection, screenWidth, screenHeight int, colors *BoardColors, enemyRadius, arrowLength float64) *BoardRenderer {
	return &BoardRenderer{
		board:       board,
		proj:        proj,
		colors:      colors,
		enemyRadius: enemyRadius,
		arrowLength: arrowLength,
		boardImage:  ebiten.NewImage(screenWidth, screenHeight),
		dirty:       true,
	}
}

// MarkDirty asks for the board image to be redrawn before the next frame.
func (r *BoardRenderer) MarkDirty() { r.dirty = true }

// TileAtScreen returns the tile under a screen position, or nil.
func (r *BoardRenderer) TileAtScreen(x, y int) *grid.Tile {
	return r.board.TileAt(r.proj.ToWorld(float64(x), float64(y)))
}

func (r *BoardRenderer) screen(v utils.Vec2) (float32, float32) {
	x, y := r.proj.ToScreen(v)
	return float32(x), float32(y)
}

// RenderBoardImage redraws tiles and path arrows into the cached board image.
func (r *BoardRenderer) RenderBoardImage() {
	r.boardImage.Clear()
	size := float32(r.proj.TileSize)
	for _, tile := range r.board.Tiles() {
		x, y := r.screen(tile.Position())
		fill := r.colors.ContentColor(tile.Content())
		if tile.Content() == grid.Empty && tile.IsAlternative {
			fill = DarkenColor(fill)
			fill.A = r.colors.GroundColor.A
		}
		vector.DrawFilledRect(r.boardImage, x-size/2+1, y-size/2+1, size-2, size-2, fill, false)

		if tile.HasPath() && !tile.IsDestination() {
			r.drawArrow(r.boardImage, tile)
		}
	}
	r.dirty = false
}

// drawArrow points from the tile center toward the tile's exit.
func (r *BoardRenderer) drawArrow(dst *ebiten.Image, tile *grid.Tile) {
	cx, cy := r.screen(tile.Position())
	dir := tile.PathDirection().Rotation()
	length := r.arrowLength * r.proj.TileSize
	tipX, tipY := cx+float32(dir.X*length), cy-float32(dir.Y*length)
	vector.StrokeLine(dst, cx, cy, tipX, tipY, 2, r.colors.ArrowColor, true)

	// Наконечник: два штриха под 150° к направлению.
	head := length * 0.4
	for _, side := range []float64{1, -1} {
		a := math.Atan2(-dir.Y, dir.X) + side*5*math.Pi/6
		hx := tipX + float32(math.Cos(a)*head)
		hy := tipY + float32(math.Sin(a)*head)
		vector.StrokeLine(dst, tipX, tipY, hx, hy, 2, r.colors.ArrowColor, true)
	}
}

// Draw renders the board, towers with their lasers, and enemies.
func (r *BoardRenderer) Draw(screen *ebiten.Image, enemies []*entity.Enemy, towers []*system.Tower) {
	if r.dirty {
		r.RenderBoardImage()
	}
	screen.DrawImage(r.boardImage, nil)

	for _, t := range towers {
		cx, cy := r.screen(t.Tile.Position())
		vector.DrawFilledCircle(screen, cx, cy, float32(r.proj.TileSize*0.25), DarkenColor(r.colors.TowerColor), true)
		if t.Target != nil && t.Target.Alive() {
			ex, ey := r.screen(t.Target.WorldPosition())
			vector.StrokeLine(screen, cx, cy, ex, ey, 3, r.colors.LaserColor, true)
		}
	}

	for _, e := range enemies {
		r.drawEnemy(screen, e)
	}
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	x, y := r.screen(e.WorldPosition())
	radius := float32(r.enemyRadius * e.Scale())
	vector.DrawFilledCircle(screen, x, y, radius, r.colors.EnemyColor, true)

	forward, _ := utils.HeadingVectors(e.Angle())
	nx := x + float32(forward.X)*radius
	ny := y - float32(forward.Y)*radius
	vector.StrokeLine(screen, x, y, nx, ny, 2, color.White, true)

	// Полоска здоровья относительно конфигурации.
	if maxHealth := e.Config().Health.Max; maxHealth > 0 {
		frac := float32(math.Max(0, math.Min(1, e.Health()/maxHealth)))
		w := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, DarkenColor(r.colors.EnemyColor), false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*frac, 3, r.colors.DestinationColor, false)
	}
}
