// pkg/render/hud.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDState is what the heads-up display shows for one frame.
type HUDState struct {
	Scenario     string
	Wave         int
	WaveCount    int
	PlayerHealth int
	MaxHealth    int
	Enemies      int
	Speed        float64
	SpeedIndex   int
	Paused       bool
}

// HUD draws the status line, the speed button and the pause indicator.
type HUD struct {
	face          font.Face
	colors        *BoardColors
	speedColors   []color.RGBA
	pausedColor   color.RGBA
	runningColor  color.RGBA
	SpeedX        float32
	SpeedY        float32
	SpeedSize     float32
	PauseX        float32
	PauseY        float32
	PauseRadius   float32
	lastSpeedTick time.Time
	lastPauseTick time.Time
}

func NewHUD(colors *BoardColors, speedColors []color.RGBA, runningColor, pausedColor color.RGBA) *HUD {
	return &HUD{
		face:         basicfont.Face7x13,
		colors:       colors,
		speedColors:  speedColors,
		runningColor: runningColor,
		pausedColor:  pausedColor,
	}
}

// SpeedClicked and PauseClicked start the click pulse animation.
func (h *HUD) SpeedClicked() { h.lastSpeedTick = time.Now() }
func (h *HUD) PauseClicked() { h.lastPauseTick = time.Now() }

// IsInsideSpeedButton reports whether a screen position hits the speed button.
func (h *HUD) IsInsideSpeedButton(x, y int) bool {
	return insideCircle(x, y, h.SpeedX, h.SpeedY, h.SpeedSize*1.5)
}

// IsInsidePauseIndicator reports whether a screen position hits the pause indicator.
func (h *HUD) IsInsidePauseIndicator(x, y int) bool {
	return insideCircle(x, y, h.PauseX, h.PauseY, h.PauseRadius)
}

func insideCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}

func pulse(since time.Time) float32 {
	return float32(1.0 + 0.3*math.Exp(-time.Since(since).Seconds()*8))
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	status := fmt.Sprintf("%s  wave %d/%d  health %d/%d  enemies %d  x%g",
		s.Scenario, s.Wave, s.WaveCount, s.PlayerHealth, s.MaxHealth, s.Enemies, s.Speed)
	text.Draw(screen, status, h.face, 10, 20, h.colors.TextColor)
	text.Draw(screen, "LMB wall  Shift+LMB tower  RMB destination  Shift+RMB spawn  Space pause  S speed  N new game",
		h.face, 10, screen.Bounds().Dy()-10, h.colors.TextColor)

	h.drawSpeedButton(screen, s.SpeedIndex)

	c := h.runningColor
	if s.Paused {
		c = h.pausedColor
	}
	r := h.PauseRadius * pulse(h.lastPauseTick)
	vector.DrawFilledCircle(screen, h.PauseX, h.PauseY, r, c, true)
	vector.StrokeCircle(screen, h.PauseX, h.PauseY, r, 1, color.White, true)
}

// drawSpeedButton draws two "fast forward" triangles colored by the speed step.
func (h *HUD) drawSpeedButton(screen *ebiten.Image, index int) {
	size := h.SpeedSize * pulse(h.lastSpeedTick)
	c := h.speedColors[index%len(h.speedColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(h.SpeedX-width+dx, h.SpeedY-height/2)
		path.LineTo(h.SpeedX+dx, h.SpeedY)
		path.LineTo(h.SpeedX-width+dx, h.SpeedY+height/2)
		path.Close()
		drawPath(screen, &path, c)
	}
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func drawPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
