// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButton shows the simulation speed as two "fast forward" triangles.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	StateColors   []rl.Color
	LastClickTime time.Time
}

func NewSpeedButton(x, y, size float32, stateColors []rl.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

// Draw renders the button for the given speed step and multiplier.
func (b *SpeedButton) Draw(index int, multiplier float64) {
	size := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())
	c := b.StateColors[index%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-width+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X-width+dx, b.Y+height/2)
		p3 := rl.NewVector2(b.X+dx, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
	label := fmt.Sprintf("x%g", multiplier)
	rl.DrawText(label, int32(b.X)-rl.MeasureText(label, 10)/2, int32(b.Y+height), 10, rl.White)
}

func (b *SpeedButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

// Clicked starts the click animation.
func (b *SpeedButton) Clicked() { b.LastClickTime = time.Now() }
