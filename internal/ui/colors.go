// internal/ui/colors.go
package ui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorToRL преобразует стандартный color.Color в rl.Color
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// clickPulse grows a widget briefly after it was clicked.
func clickPulse(elapsed float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}
