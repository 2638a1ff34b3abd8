// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/render"
	"go-grid-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.BoardRenderer
	hud           *render.HUD
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	colors := &render.BoardColors{
		BackgroundColor:  config.BackgroundColor,
		GroundColor:      config.GroundColor,
		WallColor:        config.WallColor,
		TowerColor:       config.TowerColor,
		SpawnColor:       config.SpawnColor,
		DestinationColor: config.DestinationColor,
		ArrowColor:       config.ArrowColor,
		EnemyColor:       config.EnemyColor,
		LaserColor:       config.LaserColor,
		TextColor:        config.TextLightColor,
	}
	proj := utils.NewCenteredProjection(config.TileSize, config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewBoardRenderer(game.Board, proj, config.ScreenWidth, config.ScreenHeight, colors, config.EnemyRadius, config.ArrowLength)

	hud := render.NewHUD(colors, config.SpeedButtonColors, config.RunningColor, config.PausedColor)
	hud.SpeedX, hud.SpeedY, hud.SpeedSize = config.ScreenWidth-config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize
	hud.PauseX, hud.PauseY, hud.PauseRadius = config.ScreenWidth-config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius

	gs := &GameState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		hud:      hud,
	}
	// Поле со стрелками перерисовывается только после принятых правок.
	game.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) {
		renderer.MarkDirty()
	}), event.TileChanged)
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
		return
	}
	g.handleCommonInput()

	g.game.Update(deltaTime)
	if outcome := g.game.Outcome(); outcome != app.Playing {
		g.sm.Push(NewGameOverState(g.sm, g, outcome))
	}
}

// handleCommonInput processes the input that works whether or not the game is paused.
func (g *GameState) handleCommonInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.newGame()
	}

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	x, y := ebiten.CursorPosition()
	if left && g.hud.IsInsideSpeedButton(x, y) {
		g.cycleSpeed()
		return
	}
	if left && g.hud.IsInsidePauseIndicator(x, y) {
		g.togglePause()
		return
	}

	tile := g.renderer.TileAtScreen(x, y)
	if tile == nil {
		return
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case left && shift:
		g.game.ToggleTower(tile)
	case left:
		g.game.ToggleWall(tile)
	case right && shift:
		g.game.ToggleSpawnPoint(tile)
	default:
		g.game.ToggleDestination(tile)
	}
}

func (g *GameState) newGame() {
	if err := g.game.BeginNewGame(); err != nil {
		log.Printf("Не удалось начать новую игру: %v", err)
		return
	}
	if g.game.IsPaused() {
		g.game.TogglePause()
	}
	for g.sm.Current() != State(g) && g.sm.Depth() > 1 {
		g.sm.Pop()
	}
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.hud.SpeedClicked()
}

func (g *GameState) togglePause() {
	g.hud.PauseClicked()
	if g.game.TogglePause() {
		g.sm.Push(NewPauseState(g.sm, g))
	} else if g.sm.Current() != State(g) {
		g.sm.Pop()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.Enemies.Items(), g.game.CombatSystem.Towers())
	g.hud.Draw(screen, render.HUDState{
		Scenario:     g.game.Scenario.Name(),
		Wave:         g.game.Scenario.Wave(),
		WaveCount:    g.game.Scenario.WaveCount(),
		PlayerHealth: g.game.PlayerHealth,
		MaxHealth:    config.StartingPlayerHealth,
		Enemies:      g.game.Enemies.Len(),
		Speed:        g.game.SpeedMultiplier(),
		SpeedIndex:   g.game.SpeedIndex(),
		Paused:       g.game.IsPaused(),
	})
}
