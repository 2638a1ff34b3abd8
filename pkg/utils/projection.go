// pkg/utils/projection.go
package utils

// Projection maps the ground plane to screen pixels for a top-down view. North points
// up the screen, so the Y axis is flipped.
type Projection struct {
	TileSize         float64 // pixels per world unit
	OriginX, OriginY float64 // screen position of the world origin
}

// NewCenteredProjection centers the world origin in a screen of the given size.
func NewCenteredProjection(tileSize float64, screenWidth, screenHeight int) Projection {
	return Projection{
		TileSize: tileSize,
		OriginX:  float64(screenWidth) / 2,
		OriginY:  float64(screenHeight) / 2,
	}
}

// ToScreen converts a world point to screen pixels.
func (p Projection) ToScreen(v Vec2) (float64, float64) {
	return p.OriginX + v.X*p.TileSize, p.OriginY - v.Y*p.TileSize
}

// ToWorld converts screen pixels to a world point.
func (p Projection) ToWorld(x, y float64) Vec2 {
	return Vec2{X: (x - p.OriginX) / p.TileSize, Y: (p.OriginY - y) / p.TileSize}
}
