// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	Position  rl.Vector2
	FullColor rl.Color
	LowColor  rl.Color
}

func NewPlayerHealthIndicator(x, y float32, full, low rl.Color) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{Position: rl.NewVector2(x, y), FullColor: full, LowColor: low}
}

// Draw paints one circle per health point; the remaining ones turn to the low color
// once half the health is gone.
func (i *PlayerHealthIndicator) Draw(health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	fill := i.FullColor
	if health*2 <= maxHealth {
		fill = i.LowColor
	}
	for j := 0; j < maxHealth; j++ {
		x := i.Position.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Position.Y + float32(j/HealthCols)*step + HealthCircleRadius
		c := rl.Black
		if j < health {
			c = fill
		}
		rl.DrawCircle(int32(x), int32(y), HealthCircleRadius, c)
		rl.DrawCircleLines(int32(x), int32(y), HealthCircleRadius, rl.White)
	}

	healthText := strconv.Itoa(max(health, 0)) + "/" + strconv.Itoa(maxHealth)
	rl.DrawText(healthText, int32(i.Position.X), int32(i.Position.Y)-22, 20, rl.White)
}
