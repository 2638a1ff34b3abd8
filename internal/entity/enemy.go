// internal/entity/enemy.go
package entity

import (
	"math"

	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
	"go-grid-defense/pkg/utils"
)

// Sink receives the terminal events of an enemy. It replaces any global game lookup.
type Sink interface {
	EnemyReachedDestination(e *Enemy)
	EnemyKilled(e *Enemy)
}

// MotionState is the kind of segment an enemy is traversing.
type MotionState int

const (
	Intro MotionState = iota
	Forward
	TurningRight
	TurningLeft
	TurningAround
	Outro
)

func (s MotionState) String() string {
	switch s {
	case Intro:
		return "Intro"
	case Forward:
		return "Forward"
	case TurningRight:
		return "TurnRight"
	case TurningLeft:
		return "TurnLeft"
	case TurningAround:
		return "TurnAround"
	case Outro:
		return "Outro"
	}
	return "Unknown"
}

// minTurnAroundRadius keeps the turn-around progress factor finite for enemies walking
// close to the path center.
const minTurnAroundRadius = 0.2

// Enemy follows the board's direction field one tile segment at a time. Straight
// segments interpolate the position; turns keep the pivot fixed and interpolate the
// heading, with the model displaced sideways by ModelOffset.
type Enemy struct {
	origin   *EnemyFactory
	sink     Sink
	config   *defs.EnemyConfig
	recycled bool

	tileFrom, tileTo         *grid.Tile
	positionFrom, positionTo utils.Vec2
	position                 utils.Vec2
	progress, progressFactor float64

	state           MotionState
	direction       grid.Direction
	directionChange grid.DirectionChange
	angleFrom       float64
	angleTo         float64
	angle           float64
	modelOffset     float64

	scale      float64
	pathOffset float64
	speed      float64
	health     float64
}

// Initialize sets the per-instance stats.
func (e *Enemy) Initialize(scale, pathOffset, speed, health float64) {
	e.scale = scale
	e.pathOffset = pathOffset
	e.speed = speed
	e.health = health
}

// SpawnOn places the enemy at the center of tile, facing along the tile's path.
func (e *Enemy) SpawnOn(tile *grid.Tile) {
	e.position = tile.Position()
	e.tileFrom = tile
	e.tileTo = tile.NextTileOnPath()
	e.progress = 0
	e.prepareIntro()
}

// GameUpdate advances the enemy by deltaTime seconds. It returns false once the enemy
// died or reached a destination; in both cases it has already been recycled.
func (e *Enemy) GameUpdate(deltaTime float64) bool {
	if e.health <= 0 {
		if e.sink != nil {
			e.sink.EnemyKilled(e)
		}
		e.Recycle()
		return false
	}

	e.progress += deltaTime * e.progressFactor
	for e.progress >= 1 {
		if e.tileTo == nil {
			if e.tileFrom.IsDestination() {
				if e.sink != nil {
					e.sink.EnemyReachedDestination(e)
				}
				e.Recycle()
				return false
			}
			// Клетку замуровали: ждём в центре, пока через неё снова не пройдёт путь.
			next := e.tileFrom.NextTileOnPath()
			if next == nil {
				e.progress = 1
				break
			}
			e.progress = (e.progress - 1) / e.progressFactor
			e.tileTo = next
			e.prepareIntro()
			e.progress *= e.progressFactor
			continue
		}
		// Перенос остатка: время сохраняется, а не доля сегмента.
		e.progress = (e.progress - 1) / e.progressFactor
		e.prepareNextState()
		e.progress *= e.progressFactor
	}

	if e.directionChange == grid.None {
		e.position = utils.LerpVec(e.positionFrom, e.positionTo, e.progress)
	} else {
		e.angle = utils.LerpUnclamped(e.angleFrom, e.angleTo, e.progress)
	}
	return true
}

// TakeDamage subtracts damage from the enemy's health. Health may drop below zero; the
// enemy is retired on its next update.
func (e *Enemy) TakeDamage(damage float64) {
	e.health -= damage
}

// Recycle hands the enemy back to the factory that created it.
func (e *Enemy) Recycle() {
	if e.origin != nil {
		e.origin.Reclaim(e)
	}
}

func (e *Enemy) prepareIntro() {
	e.positionFrom = e.tileFrom.Position()
	e.positionTo = e.tileFrom.ExitPoint()
	e.direction = e.tileFrom.PathDirection()
	e.directionChange = grid.None
	e.angleFrom = e.direction.Angle()
	e.angleTo = e.angleFrom
	e.angle = e.angleFrom
	e.modelOffset = e.pathOffset
	e.progressFactor = 2 * e.speed
	e.state = Intro
}

func (e *Enemy) prepareOutro() {
	e.positionTo = e.tileFrom.Position()
	e.directionChange = grid.None
	e.angleTo = e.direction.Angle()
	e.angle = e.angleTo
	e.modelOffset = e.pathOffset
	e.progressFactor = 2 * e.speed
	e.state = Outro
}

func (e *Enemy) prepareNextState() {
	e.tileFrom = e.tileTo
	e.tileTo = e.tileTo.NextTileOnPath()
	e.positionFrom = e.positionTo
	if e.tileTo == nil {
		e.prepareOutro()
		return
	}

	e.positionTo = e.tileFrom.ExitPoint()
	e.directionChange = e.direction.ChangeTo(e.tileFrom.PathDirection())
	e.direction = e.tileFrom.PathDirection()
	e.angleFrom = e.angleTo

	switch e.directionChange {
	case grid.None:
		e.prepareForward()
	case grid.TurnRight:
		e.prepareTurnRight()
	case grid.TurnLeft:
		e.prepareTurnLeft()
	default:
		e.prepareTurnAround()
	}
}

func (e *Enemy) prepareForward() {
	e.angleTo = e.direction.Angle()
	e.angle = e.angleTo
	e.modelOffset = e.pathOffset
	e.progressFactor = e.speed
	e.state = Forward
}

// Turns pivot around the tile corner on the inside of the curve. Both quarter turns
// take time proportional to the right-hand arc 0.5-pathOffset, so a left turn on the
// outer lane is swept faster than walking speed.
func (e *Enemy) prepareTurnRight() {
	e.angleTo = e.angleFrom + 90
	e.modelOffset = e.pathOffset - 0.5
	e.position = e.positionFrom.Add(e.direction.HalfVector())
	e.progressFactor = e.speed / (math.Pi * 0.5 * (0.5 - e.pathOffset))
	e.state = TurningRight
}

func (e *Enemy) prepareTurnLeft() {
	e.angleTo = e.angleFrom - 90
	e.modelOffset = e.pathOffset + 0.5
	e.position = e.positionFrom.Add(e.direction.HalfVector())
	e.progressFactor = e.speed / (math.Pi * 0.5 * (0.5 - e.pathOffset))
	e.state = TurningLeft
}

func (e *Enemy) prepareTurnAround() {
	if e.pathOffset < 0 {
		e.angleTo = e.angleFrom + 180
	} else {
		e.angleTo = e.angleFrom - 180
	}
	e.modelOffset = e.pathOffset
	e.position = e.positionFrom
	e.progressFactor = e.speed / (math.Pi * math.Max(e.pathOffset, minTurnAroundRadius))
	e.state = TurningAround
}

// Position returns the enemy's pivot: its path position on straight segments and the
// turn center while turning.
func (e *Enemy) Position() utils.Vec2 { return e.position }

// Angle returns the heading in degrees clockwise from north. It is not normalized.
func (e *Enemy) Angle() float64 { return e.angle }

// ModelOffset is the model's sideways displacement from the pivot, positive to the right.
func (e *Enemy) ModelOffset() float64 { return e.modelOffset }

// WorldPosition returns where the enemy's model is drawn.
func (e *Enemy) WorldPosition() utils.Vec2 {
	_, right := utils.HeadingVectors(e.angle)
	return e.position.Add(right.Scale(e.modelOffset))
}

// Tile returns the tile the current segment belongs to.
func (e *Enemy) Tile() *grid.Tile { return e.tileFrom }

// NextTile returns the tile after the current one, or nil on the final segment.
func (e *Enemy) NextTile() *grid.Tile { return e.tileTo }

func (e *Enemy) State() MotionState { return e.state }
func (e *Enemy) Progress() float64 { return e.progress }
func (e *Enemy) ProgressFactor() float64 { return e.progressFactor }
func (e *Enemy) Health() float64 { return e.health }
func (e *Enemy) Scale() float64 { return e.scale }
func (e *Enemy) Speed() float64 { return e.speed }
func (e *Enemy) PathOffset() float64 { return e.pathOffset }
func (e *Enemy) Config() *defs.EnemyConfig { return e.config }
func (e *Enemy) Direction() grid.Direction { return e.direction }
func (e *Enemy) Alive() bool { return !e.recycled && e.health > 0 }
