// internal/ui/pause_button.go
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton shows "pause" bars while running and a "play" triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	PauseColor    rl.Color
	PlayColor     rl.Color
	LastClickTime time.Time
}

func NewPauseButton(x, y, size float32, pauseColor, playColor rl.Color) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButton) Draw(paused bool) {
	size := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())
	if paused {
		p1 := rl.NewVector2(b.X-size, b.Y-size*1.2)
		p2 := rl.NewVector2(b.X-size, b.Y+size*1.2)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, b.PlayColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rl.DrawRectangleV(rl.NewVector2(x, b.Y-height/2), rl.NewVector2(width, height), b.PauseColor)
		rl.DrawRectangleLines(int32(x), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	}
}

func (b *PauseButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

// Clicked starts the click animation.
func (b *PauseButton) Clicked() { b.LastClickTime = time.Now() }
