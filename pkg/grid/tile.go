// pkg/grid/tile.go
package grid

import (
	"math"

	"go-grid-defense/pkg/utils"
)

// ContentType классифицирует содержимое клетки.
type ContentType int

const (
	Empty ContentType = iota
	Wall
	Tower
	SpawnPoint
	Destination
)

// BlocksPath reports whether enemies cannot be routed through content of this type.
func (c ContentType) BlocksPath() bool {
	return c == Wall || c == Tower
}

func (c ContentType) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Tower:
		return "Tower"
	case SpawnPoint:
		return "SpawnPoint"
	case Destination:
		return "Destination"
	}
	return "Unknown"
}

// Tile — одна клетка поля. Соседи выставляются один раз при создании доски.
type Tile struct {
	X, Y          int
	IsAlternative bool

	position  utils.Vec2
	neighbors [4]*Tile
	content   ContentType

	// Состояние поиска пути, пересчитывается при каждом FindPaths.
	distance      int
	hasPath       bool
	nextOnPath    *Tile
	pathDirection Direction
	exitPoint     utils.Vec2
}

// Position returns the world-space center of the tile.
func (t *Tile) Position() utils.Vec2 { return t.position }

// Content returns the current content classification.
func (t *Tile) Content() ContentType { return t.content }

// Neighbor returns the adjacent tile in direction d, or nil at the board edge.
func (t *Tile) Neighbor(d Direction) *Tile { return t.neighbors[d] }

// HasPath reports whether the last search reached this tile.
func (t *Tile) HasPath() bool { return t.hasPath }

// Distance is the hop count to the nearest destination found by the last search.
func (t *Tile) Distance() int { return t.distance }

// NextTileOnPath returns the tile an enemy moves to after this one; nil on destinations.
func (t *Tile) NextTileOnPath() *Tile { return t.nextOnPath }

// PathDirection is the direction an enemy faces when leaving this tile.
func (t *Tile) PathDirection() Direction { return t.pathDirection }

// ExitPoint is where an enemy leaves the tile: the middle of the edge it crosses,
// or the tile center for destinations.
func (t *Tile) ExitPoint() utils.Vec2 { return t.exitPoint }

// IsDestination is a shorthand for Content() == Destination.
func (t *Tile) IsDestination() bool { return t.content == Destination }

// ManhattanTo returns the grid distance to o ignoring obstacles.
func (t *Tile) ManhattanTo(o *Tile) int {
	return utils.Abs(t.X-o.X) + utils.Abs(t.Y-o.Y)
}

func makeEastWestNeighbors(east, west *Tile) {
	west.neighbors[East] = east
	east.neighbors[West] = west
}

func makeNorthSouthNeighbors(north, south *Tile) {
	south.neighbors[North] = north
	north.neighbors[South] = south
}

func (t *Tile) clearPath() {
	t.distance = math.MaxInt
	t.hasPath = false
	t.nextOnPath = nil
	t.pathDirection = North
	t.exitPoint = t.position
}

func (t *Tile) becomeDestination() {
	t.clearPath()
	t.distance = 0
	t.hasPath = true
}

// growPathTo extends the field from t into its neighbor in direction d. The neighbor
// is returned only if it should be expanded further.
func (t *Tile) growPathTo(d Direction) *Tile {
	neighbor := t.neighbors[d]
	if !t.hasPath || neighbor == nil || neighbor.hasPath {
		return nil
	}
	back := d.Opposite()
	if neighbor.content.BlocksPath() {
		// Враги, уже идущие через эту клетку, проходят её насквозь.
		// Клетка среди одних препятствий так и остаётся без выхода; враг ждёт в её центре.
		if neighbor.nextOnPath == nil {
			neighbor.point(t, back)
		}
		return nil
	}
	neighbor.point(t, back)
	neighbor.distance = t.distance + 1
	neighbor.hasPath = true
	return neighbor
}

func (t *Tile) point(next *Tile, d Direction) {
	t.nextOnPath = next
	t.pathDirection = d
	t.exitPoint = t.position.Add(d.HalfVector())
}
