// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	FontSize         int32
	Color            rl.Color
	LastWaveColor    rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewWaveIndicator(x, y float32, fontSize int32, c, lastWave rl.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            c,
		LastWaveColor:    lastWave,
		OutlineColor:     rl.White,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the wave number on X; the final wave of the scenario is highlighted.
func (i *WaveIndicator) Draw(wave, waveCount int) {
	text := toRoman(wave)
	if text == "" {
		return
	}
	textColor := i.Color
	if wave == waveCount {
		textColor = i.LastWaveColor
	}

	x := int32(i.X) - rl.MeasureText(text, i.FontSize)/2
	y := int32(i.Y)
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx != 0 || dy != 0 {
				rl.DrawText(text, x+dx, y+dy, i.FontSize, i.OutlineColor)
			}
		}
	}
	rl.DrawText(text, x, y, i.FontSize, textColor)
}
