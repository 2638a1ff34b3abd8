// pkg/render/color.go
package render

import (
	"image/color"

	"go-grid-defense/pkg/grid"
)

// BoardColors holds all the color definitions needed to render the board.
type BoardColors struct {
	BackgroundColor  color.RGBA
	GroundColor      color.RGBA
	WallColor        color.RGBA
	TowerColor       color.RGBA
	SpawnColor       color.RGBA
	DestinationColor color.RGBA
	ArrowColor       color.RGBA
	EnemyColor       color.RGBA
	LaserColor       color.RGBA
	TextColor        color.RGBA
}

// ContentColor returns the fill color of a tile with the given content.
func (c *BoardColors) ContentColor(content grid.ContentType) color.RGBA {
	switch content {
	case grid.Wall:
		return c.WallColor
	case grid.Tower:
		return c.TowerColor
	case grid.SpawnPoint:
		return c.SpawnColor
	case grid.Destination:
		return c.DestinationColor
	}
	return c.GroundColor
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
