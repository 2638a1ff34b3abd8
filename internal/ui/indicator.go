// internal/ui/indicator.go
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Banner shows a centered message across the screen, e.g. the outcome of a game.
type Banner struct {
	ScreenWidth, ScreenHeight int32
	FontSize                  int32
	shownAt                   time.Time
}

func NewBanner(screenWidth, screenHeight, fontSize int32) *Banner {
	return &Banner{ScreenWidth: screenWidth, ScreenHeight: screenHeight, FontSize: fontSize}
}

// Show restarts the banner's entrance animation.
func (b *Banner) Show() { b.shownAt = time.Now() }

func (b *Banner) Draw(text string, c rl.Color) {
	scale := clickPulse(time.Since(b.shownAt).Seconds())
	size := int32(float32(b.FontSize) * scale)
	band := size * 2
	rl.DrawRectangle(0, b.ScreenHeight/2-band/2, b.ScreenWidth, band, rl.Fade(rl.Black, 0.6))
	w := rl.MeasureText(text, size)
	rl.DrawText(text, b.ScreenWidth/2-w/2, b.ScreenHeight/2-size/2, size, c)
}
