package main

import (
	"flag"
	"fmt"
	"log"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/ui"
	"go-grid-defense/pkg/grid"
	"go-grid-defense/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// toWorld3D maps the ground plane to raylib space: east is +X and north is -Z.
func toWorld3D(v utils.Vec2, height float32) rl.Vector3 {
	return rl.NewVector3(float32(v.X), height, float32(-v.Y))
}

// pickTile casts the mouse ray onto the ground plane and returns the tile under it.
func pickTile(board *grid.Board, camera rl.Camera3D) *grid.Tile {
	ray := rl.GetMouseRay(rl.GetMousePosition(), camera)
	if ray.Direction.Y == 0 {
		return nil
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t <= 0 {
		return nil
	}
	hit := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	return board.TileAt(utils.Vec2{X: float64(hit.X), Y: float64(-hit.Z)})
}

type viewer struct {
	game        *app.Game
	speed       *ui.SpeedButton
	pause       *ui.PauseButton
	health      *ui.PlayerHealthIndicator
	wave        *ui.WaveIndicator
	banner      *ui.Banner
	gameOverFor float64
}

func (v *viewer) handleInput(camera rl.Camera3D) {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.game.TogglePause()
		v.pause.Clicked()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		v.game.CycleSpeed()
		v.speed.Clicked()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		v.newGame()
	}

	left := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	right := rl.IsMouseButtonPressed(rl.MouseButtonRight)
	if !left && !right {
		return
	}
	mouse := rl.GetMousePosition()
	if left && v.speed.IsClicked(mouse) {
		v.game.CycleSpeed()
		v.speed.Clicked()
		return
	}
	if left && v.pause.IsClicked(mouse) {
		v.game.TogglePause()
		v.pause.Clicked()
		return
	}

	tile := pickTile(v.game.Board, camera)
	if tile == nil {
		return
	}
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch {
	case left && shift:
		v.game.ToggleTower(tile)
	case left:
		v.game.ToggleWall(tile)
	case right && shift:
		v.game.ToggleSpawnPoint(tile)
	default:
		v.game.ToggleDestination(tile)
	}
}

func (v *viewer) newGame() {
	if err := v.game.BeginNewGame(); err != nil {
		log.Printf("Не удалось начать новую игру: %v", err)
		return
	}
	if v.game.IsPaused() {
		v.game.TogglePause()
	}
	v.gameOverFor = 0
}

func (v *viewer) update(deltaTime float64) {
	if v.game.Outcome() != app.Playing {
		if v.gameOverFor == 0 {
			v.banner.Show()
		}
		v.gameOverFor += deltaTime
		if v.gameOverFor >= config.GameOverDelay {
			v.newGame()
		}
		return
	}
	v.game.Update(deltaTime)
}

func drawBoard(board *grid.Board) {
	for _, tile := range board.Tiles() {
		pos := tile.Position()
		ground := ui.ColorToRL(config.GroundColor)
		if tile.IsAlternative {
			ground = rl.ColorBrightness(ground, -0.15)
		}
		rl.DrawCube(toWorld3D(pos, -0.05), 0.96, 0.1, 0.96, ground)

		switch tile.Content() {
		case grid.Wall:
			rl.DrawCube(toWorld3D(pos, config.WallHeight/2), 1, config.WallHeight, 1, ui.ColorToRL(config.WallColor))
			rl.DrawCubeWires(toWorld3D(pos, config.WallHeight/2), 1, config.WallHeight, 1, rl.DarkGray)
		case grid.Tower:
			rl.DrawCube(toWorld3D(pos, config.WallHeight/2), 1, config.WallHeight, 1, ui.ColorToRL(config.WallColor))
			rl.DrawCylinder(toWorld3D(pos, config.WallHeight), 0.2, 0.3, config.TowerHeight-config.WallHeight, 8, ui.ColorToRL(config.TowerColor))
		case grid.SpawnPoint:
			rl.DrawCube(toWorld3D(pos, 0.02), 0.8, 0.04, 0.8, ui.ColorToRL(config.SpawnColor))
		case grid.Destination:
			rl.DrawCube(toWorld3D(pos, 0.02), 0.8, 0.04, 0.8, ui.ColorToRL(config.DestinationColor))
		}

		if tile.HasPath() && !tile.IsDestination() && !tile.Content().BlocksPath() {
			tip := pos.Add(tile.PathDirection().Rotation().Scale(config.ArrowLength))
			rl.DrawLine3D(toWorld3D(pos, 0.01), toWorld3D(tip, 0.01), ui.ColorToRL(config.ArrowColor))
		}
	}
}

func drawEnemy(e *entity.Enemy) {
	radius := float32(0.2 * e.Scale())
	center := toWorld3D(e.WorldPosition(), radius)
	rl.DrawSphere(center, radius, ui.ColorToRL(config.EnemyColor))

	forward, _ := utils.HeadingVectors(e.Angle())
	nose := toWorld3D(e.WorldPosition().Add(forward.Scale(float64(radius)*1.5)), radius)
	rl.DrawLine3D(center, nose, rl.White)
}

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	game, err := app.NewSession(opts)
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация ---
	const screenWidth = config.ScreenWidth
	const screenHeight = config.ScreenHeight
	rl.InitWindow(screenWidth, screenHeight, "Grid Defense 3D | Q/E - Rotate, Mouse Wheel - Change Angle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	backgroundColor := ui.ColorToRL(config.BackgroundColor)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	extent := float32(max(game.Board.Width(), game.Board.Height()))
	isoPos := rl.NewVector3(extent*0.6, extent*1.1, extent*1.1)
	topDownPos := rl.NewVector3(0, extent*1.6, 0.01)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(config.CameraFovyDefault)
	topDownFovy := float32(config.CameraFovyDefault - 10)
	cameraAngleT := float32(0.3)

	speedColors := make([]rl.Color, len(config.SpeedButtonColors))
	for i, c := range config.SpeedButtonColors {
		speedColors[i] = ui.ColorToRL(c)
	}
	v := &viewer{
		game:   game,
		speed:  ui.NewSpeedButton(screenWidth-config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, speedColors),
		pause:  ui.NewPauseButton(screenWidth-config.SpeedButtonX-60, config.SpeedButtonY, config.SpeedButtonSize, ui.ColorToRL(config.RunningColor), ui.ColorToRL(config.PausedColor)),
		health: ui.NewPlayerHealthIndicator(20, 50, ui.ColorToRL(config.DestinationColor), ui.ColorToRL(config.EnemyColor)),
		wave:   ui.NewWaveIndicator(screenWidth/2, 10, 40, ui.ColorToRL(config.TextLightColor), ui.ColorToRL(config.EnemyColor)),
		banner: ui.NewBanner(screenWidth, screenHeight, 40),
	}

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = min(max(cameraAngleT+wheel*0.05, 0), 0.99)
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		v.handleInput(camera)
		v.update(deltaTime)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.BeginMode3D(camera)
		drawBoard(game.Board)
		for _, t := range game.CombatSystem.Towers() {
			if t.Target != nil && t.Target.Alive() {
				from := toWorld3D(t.Tile.Position(), config.TowerHeight)
				to := toWorld3D(t.Target.WorldPosition(), float32(0.2*t.Target.Scale()))
				rl.DrawLine3D(from, to, ui.ColorToRL(config.LaserColor))
			}
		}
		for _, e := range game.Enemies.Items() {
			drawEnemy(e)
		}
		if tile := pickTile(game.Board, camera); tile != nil {
			rl.DrawCubeWires(toWorld3D(tile.Position(), 0.05), 1, 0.1, 1, rl.Yellow)
		}
		rl.EndMode3D()

		// --- UI ---
		v.health.Draw(game.PlayerHealth, config.StartingPlayerHealth)
		v.wave.Draw(game.Scenario.Wave(), game.Scenario.WaveCount())
		v.speed.Draw(game.SpeedIndex(), game.SpeedMultiplier())
		v.pause.Draw(game.IsPaused())
		rl.DrawText(fmt.Sprintf("enemies: %d", game.Enemies.Len()), 20, screenHeight-60, 20, rl.White)
		rl.DrawText("LMB wall  Shift+LMB tower  RMB destination  Shift+RMB spawn  Space pause  S speed  N new game", 20, screenHeight-30, 16, rl.LightGray)
		if outcome := game.Outcome(); outcome != app.Playing {
			v.banner.Draw(outcome.String()+"!", rl.White)
		}
		rl.DrawFPS(screenWidth-100, screenHeight-30)

		rl.EndDrawing()
	}
}
