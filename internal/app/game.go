// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Outcome is the result of a game session.
type Outcome int

const (
	Playing Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	}
	return "Playing"
}

// Game holds the main game state and logic.
type Game struct {
	Board           *grid.Board
	Defs            *defs.Definitions
	Factory         *entity.EnemyFactory
	Enemies         entity.Collection[*entity.Enemy]
	CombatSystem    *system.CombatSystem
	Scenario        *system.ScenarioState
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	PlayerHealth    int

	// Game state
	gameTime     float64
	isPaused     bool
	speedIndex   int
	scenarioDone bool
	outcome      Outcome
}

// NewGame initializes a new game instance on board. Passing nil definitions uses the
// built-in scenario; a zero seed picks a time-based one.
func NewGame(board *grid.Board, d *defs.Definitions, seed int64) (*Game, error) {
	if board == nil {
		panic("board cannot be nil")
	}
	if d == nil {
		d = defs.Default()
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}

	g := &Game{
		Board:           board,
		Defs:            d,
		CombatSystem:    system.NewCombatSystem(d.Tower),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
	}
	g.Factory = entity.NewEnemyFactory(g.Rng, g)
	g.CombatSystem.Sync(board)
	if err := g.BeginNewGame(); err != nil {
		return nil, err
	}
	return g, nil
}

// BeginNewGame recycles every enemy, restores player health and restarts the scenario.
// The board layout is kept.
func (g *Game) BeginNewGame() error {
	scenario, err := system.NewScenarioState(g.Defs, g)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", g.Defs.Scenario.Name, err)
	}
	g.Enemies.Clear()
	g.CombatSystem.ClearTargets()
	g.Scenario = scenario
	g.PlayerHealth = config.StartingPlayerHealth
	g.scenarioDone = false
	g.outcome = Playing
	g.gameTime = 0
	log.Printf("Новая игра: сценарий %q, волн: %d", scenario.Name(), scenario.WaveCount())
	return nil
}

// Update advances the session by deltaTime seconds of real time.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.outcome != Playing {
		return
	}
	dt := deltaTime * g.SpeedMultiplier()
	g.gameTime += dt

	if !g.scenarioDone && !g.Scenario.Progress(dt) {
		g.scenarioDone = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.ScenarioCompleted})
	}
	g.Enemies.GameUpdate(dt)
	g.CombatSystem.Update(dt, g.Enemies.Items())
	g.checkOutcome()
}

func (g *Game) checkOutcome() {
	switch {
	case g.PlayerHealth <= 0:
		g.outcome = Defeat
	case g.scenarioDone && g.Enemies.IsEmpty():
		g.outcome = Victory
	default:
		return
	}
	log.Printf("Игра окончена: %s на волне %d", g.outcome, g.Scenario.Wave())
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Victory: g.outcome == Victory, Wave: g.Scenario.Wave()},
	})
}

// SpawnEnemy places a new enemy on a spawn point. A negative index picks a random
// spawn point; larger indices wrap around.
func (g *Game) SpawnEnemy(spawnPoint int, cfg *defs.EnemyConfig) {
	count := g.Board.SpawnPointCount()
	if spawnPoint < 0 {
		spawnPoint = g.Rng.Intn(count)
	} else {
		spawnPoint %= count
	}
	e := g.Factory.Get(cfg)
	e.SpawnOn(g.Board.SpawnPoint(spawnPoint))
	g.Enemies.Add(e)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: g.enemyData(e)})
}

// EnemyReachedDestination costs the player one health point.
func (g *Game) EnemyReachedDestination(e *entity.Enemy) {
	g.PlayerHealth--
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedDestination, Data: g.enemyData(e)})
}

// EnemyKilled reports a kill.
func (g *Game) EnemyKilled(e *entity.Enemy) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: g.enemyData(e)})
}

func (g *Game) enemyData(e *entity.Enemy) event.EnemyData {
	pos := e.Position()
	return event.EnemyData{EnemyID: e.Config().ID, X: pos.X, Y: pos.Y, HealthAfter: g.PlayerHealth}
}

// TogglePause flips the pause flag and returns the new value.
func (g *Game) TogglePause() bool {
	g.isPaused = !g.isPaused
	return g.isPaused
}

// CycleSpeed switches to the next speed multiplier and returns it.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	return g.SpeedMultiplier()
}

func (g *Game) SpeedMultiplier() float64 { return config.SpeedMultipliers[g.speedIndex] }
func (g *Game) SpeedIndex() int           { return g.speedIndex }
func (g *Game) IsPaused() bool            { return g.isPaused }
func (g *Game) Outcome() Outcome          { return g.outcome }
func (g *Game) GameTime() float64         { return g.gameTime }
