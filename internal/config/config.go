// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	BoardWidth   = 11
	BoardHeight  = 11
	TileSize     = 64.0 // pixels per tile in the 2D view
	MaxDeltaTime = 0.06

	StartingPlayerHealth = 10
	GameOverDelay        = 2.0 // seconds before a new game starts

	TowerRange           = 1.5 // tiles
	TowerDamagePerSecond = 25.0

	EnemyRadius = 14.0 // pixels at scale 1
	ArrowLength = 0.3  // fraction of TileSize

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonX     = 80
	SpeedButtonY     = 30
	SpeedButtonSize  = 12.0
	ClickCooldown    = 150 // ms

	// 3D viewer
	CameraFovyDefault = 45.0
	WallHeight        = 0.5
	TowerHeight       = 1.2

	// Terminal front end
	TerminalTickMs = 16
)

// SpeedMultipliers cycles through simulation speeds.
var SpeedMultipliers = []float64{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{70, 100, 120, 220}
	WallColor        = color.RGBA{128, 128, 128, 255}
	TowerColor       = color.RGBA{50, 100, 255, 255}
	SpawnColor       = color.RGBA{255, 140, 0, 255}
	DestinationColor = color.RGBA{50, 205, 50, 255}
	ArrowColor       = color.RGBA{240, 240, 240, 120}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	LaserColor       = color.RGBA{255, 255, 0, 200}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	RunningColor     = color.RGBA{70, 130, 180, 220}
	PausedColor      = color.RGBA{220, 60, 60, 220}
)

// SpeedButtonColors matches SpeedMultipliers by index.
var SpeedButtonColors = []color.RGBA{
	{70, 130, 180, 220},  // x1
	{220, 60, 60, 220},   // x2
	{194, 178, 128, 255}, // x4
}
