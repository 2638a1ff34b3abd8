// internal/event/types.go
package event

import "go-grid-defense/pkg/grid"

const (
	EnemySpawned            EventType = "EnemySpawned"
	EnemyReachedDestination EventType = "EnemyReachedDestination" // Враг дошёл до цели
	EnemyKilled             EventType = "EnemyKilled"             // Враг уничтожен
	TileChanged             EventType = "TileChanged"
	EditRejected            EventType = "EditRejected" // Правка нарушила бы связность поля
	ScenarioCompleted       EventType = "ScenarioCompleted"
	GameOver                EventType = "GameOver"
)

// AllTypes lists every event type the game dispatches.
var AllTypes = []EventType{
	EnemySpawned, EnemyReachedDestination, EnemyKilled,
	TileChanged, EditRejected, ScenarioCompleted, GameOver,
}

// EnemyData accompanies the enemy events.
type EnemyData struct {
	EnemyID     string
	X, Y        float64
	HealthAfter int // player health after the event
}

// TileData accompanies TileChanged and EditRejected.
type TileData struct {
	X, Y    int
	Edit    string           // "wall", "tower", "destination" or "spawn point"
	Content grid.ContentType // content after the edit, or the unchanged content when rejected
}

// GameOverData reports the outcome of a session.
type GameOverData struct {
	Victory bool
	Wave    int
}
