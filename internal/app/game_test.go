package app

import (
	"testing"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

type eventLog struct {
	counts map[event.EventType]int
	last   map[event.EventType]event.Event
}

func listen(g *Game) *eventLog {
	l := &eventLog{counts: map[event.EventType]int{}, last: map[event.EventType]event.Event{}}
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		l.counts[e.Type]++
		l.last[e.Type] = e
	}))
	return l
}

func singleSequence(speed, health float64, amount int, cooldown float64, tower defs.TowerDefinition) *defs.Definitions {
	return &defs.Definitions{
		Enemies: map[string]*defs.EnemyConfig{
			"RUNNER": {
				ID:         "RUNNER",
				Scale:      defs.Fixed(1),
				PathOffset: defs.Fixed(0),
				Speed:      defs.Fixed(speed),
				Health:     defs.Fixed(health),
			},
		},
		Tower: tower,
		Scenario: defs.ScenarioDef{
			Name: "test",
			Waves: []defs.WaveDef{{Sequences: []defs.SpawnSequenceDef{
				{Enemy: "RUNNER", Amount: amount, Cooldown: cooldown},
			}}},
		},
	}
}

var harmless = defs.TowerDefinition{Range: 1, DamagePerSecond: 0}

func newTestGame(t *testing.T, board *grid.Board, d *defs.Definitions) *Game {
	t.Helper()
	g, err := NewGame(board, d, 42)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func runToOutcome(t *testing.T, g *Game, dt float64) {
	t.Helper()
	for i := 0; i < 10000 && g.Outcome() == Playing; i++ {
		g.Update(dt)
	}
	if g.Outcome() == Playing {
		t.Fatal("game never ended")
	}
}

func TestLeaksCostHealthAndScenarioEndsInVictory(t *testing.T) {
	g := newTestGame(t, grid.NewBoard(3, 1), singleSequence(5, 10, 3, 1, harmless))
	events := listen(g)

	runToOutcome(t, g, 0.05)
	if g.Outcome() != Victory {
		t.Fatalf("outcome = %v, want Victory", g.Outcome())
	}
	if g.PlayerHealth != config.StartingPlayerHealth-3 {
		t.Fatalf("player health = %d, want %d", g.PlayerHealth, config.StartingPlayerHealth-3)
	}
	if events.counts[event.EnemySpawned] != 3 || events.counts[event.EnemyReachedDestination] != 3 {
		t.Fatalf("events = %v", events.counts)
	}
	if events.counts[event.ScenarioCompleted] != 1 || events.counts[event.GameOver] != 1 {
		t.Fatalf("events = %v", events.counts)
	}
	if data := events.last[event.GameOver].Data.(event.GameOverData); !data.Victory {
		t.Fatal("GameOver should report a victory")
	}
	if g.Factory.Active() != 0 || !g.Enemies.IsEmpty() {
		t.Fatal("all enemies should be back in the pool")
	}

	before := g.GameTime()
	g.Update(1)
	if g.GameTime() != before || events.counts[event.GameOver] != 1 {
		t.Fatal("finished game should not advance")
	}
}

func TestDefeatWhenHealthRunsOut(t *testing.T) {
	g := newTestGame(t, grid.NewBoard(3, 1), singleSequence(5, 10, 20, 0.25, harmless))
	events := listen(g)

	runToOutcome(t, g, 0.05)
	if g.Outcome() != Defeat || g.PlayerHealth > 0 {
		t.Fatalf("outcome = %v with health %d, want Defeat", g.Outcome(), g.PlayerHealth)
	}
	if data := events.last[event.GameOver].Data.(event.GameOverData); data.Victory {
		t.Fatal("GameOver should report a defeat")
	}

	wall := g.Board.Tile(2, 0)
	if !g.ToggleWall(wall) {
		t.Fatal("wall on the dead-end tile should be accepted")
	}
	if err := g.BeginNewGame(); err != nil {
		t.Fatal(err)
	}
	if g.Outcome() != Playing || g.PlayerHealth != config.StartingPlayerHealth || g.GameTime() != 0 {
		t.Fatal("BeginNewGame should reset the session")
	}
	if !g.Enemies.IsEmpty() || g.Factory.Active() != 0 {
		t.Fatal("BeginNewGame should recycle every enemy")
	}
	if wall.Content() != grid.Wall {
		t.Fatal("BeginNewGame should keep the board")
	}
}

func TestTowersKillEnemies(t *testing.T) {
	board := grid.NewBoard(3, 3)
	g := newTestGame(t, board, singleSequence(0.2, 10, 1, 1, defs.TowerDefinition{Range: 3, DamagePerSecond: 1000}))
	events := listen(g)
	if !g.ToggleTower(board.Tile(2, 0)) {
		t.Fatal("tower placement rejected")
	}

	runToOutcome(t, g, 0.02)
	if g.Outcome() != Victory {
		t.Fatalf("outcome = %v, want Victory", g.Outcome())
	}
	if events.counts[event.EnemyKilled] != 1 || events.counts[event.EnemyReachedDestination] != 0 {
		t.Fatalf("events = %v", events.counts)
	}
	if g.PlayerHealth != config.StartingPlayerHealth {
		t.Fatalf("player health = %d, want %d", g.PlayerHealth, config.StartingPlayerHealth)
	}
}

func TestPauseAndSpeed(t *testing.T) {
	g := newTestGame(t, grid.NewBoard(5, 5), nil)

	if !g.TogglePause() || !g.IsPaused() {
		t.Fatal("TogglePause should pause")
	}
	g.Update(0.5)
	if g.GameTime() != 0 || !g.Enemies.IsEmpty() {
		t.Fatal("paused game should not advance")
	}
	g.TogglePause()

	if got := g.CycleSpeed(); got != config.SpeedMultipliers[1] {
		t.Fatalf("speed = %v, want %v", got, config.SpeedMultipliers[1])
	}
	g.Update(0.5)
	if want := 0.5 * config.SpeedMultipliers[1]; g.GameTime() != want {
		t.Fatalf("game time = %v, want %v", g.GameTime(), want)
	}
	for i := 1; i < len(config.SpeedMultipliers); i++ {
		g.CycleSpeed()
	}
	if g.SpeedIndex() != 0 || g.SpeedMultiplier() != config.SpeedMultipliers[0] {
		t.Fatal("CycleSpeed should wrap around")
	}
}

func TestEditsDispatchEventsAndTrackTowers(t *testing.T) {
	board := grid.NewBoard(5, 1)
	g := newTestGame(t, board, nil)
	events := listen(g)

	if g.ToggleWall(board.Tile(1, 0)) {
		t.Fatal("wall cutting the spawn point off should be rejected")
	}
	if events.counts[event.EditRejected] != 1 {
		t.Fatalf("events = %v", events.counts)
	}
	if data := events.last[event.EditRejected].Data.(event.TileData); data.X != 1 || data.Content != grid.Empty {
		t.Fatalf("rejected edit data = %+v", data)
	}

	if !g.ToggleTower(board.Tile(4, 0)) || !g.ToggleWall(board.Tile(3, 0)) {
		t.Fatal("edits on the dead end should be accepted")
	}
	if events.counts[event.TileChanged] != 2 {
		t.Fatalf("events = %v", events.counts)
	}
	if tiles := g.TowerTiles(); len(tiles) != 1 || tiles[0] != board.Tile(4, 0) {
		t.Fatal("tower registry out of sync after placement")
	}

	if !g.ToggleTower(board.Tile(3, 0)) {
		t.Fatal("turning a wall into a tower should be accepted")
	}
	if len(g.TowerTiles()) != 2 {
		t.Fatal("upgraded wall should join the tower registry")
	}
	if !g.ToggleTower(board.Tile(3, 0)) || len(g.TowerTiles()) != 1 || g.TowerTiles()[0] != board.Tile(4, 0) {
		t.Fatal("removed tower should leave the registry")
	}
	if g.ToggleWall(nil) {
		t.Fatal("editing outside the board should be a no-op")
	}
}

func TestSpawnPointSelection(t *testing.T) {
	board := grid.NewBoard(5, 5)
	g := newTestGame(t, board, nil)
	board.ToggleSpawnPoint(board.Tile(4, 4))
	cfg := g.Defs.Enemies["ENEMY_SMALL"]

	g.SpawnEnemy(3, cfg)
	items := g.Enemies.Items()
	if items[len(items)-1].Tile() != board.SpawnPoint(1) {
		t.Fatal("spawn index should wrap around the spawn point count")
	}

	for i := 0; i < 20; i++ {
		g.SpawnEnemy(-1, cfg)
		items = g.Enemies.Items()
		tile := items[len(items)-1].Tile()
		if tile != board.SpawnPoint(0) && tile != board.SpawnPoint(1) {
			t.Fatal("random spawn should use an existing spawn point")
		}
	}
}
