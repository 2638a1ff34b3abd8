// pkg/grid/board.go
package grid

import (
	"math"

	"go-grid-defense/pkg/utils"
)

// Board owns the tile grid, the spawn point list and the derived direction field.
// Every content edit keeps the field valid: an edit that leaves some walkable tile
// without a route to a destination is rolled back.
type Board struct {
	width, height int
	tiles         []*Tile
	spawnPoints   []*Tile
	frontier      frontier
}

// NewBoard creates a width x height board centered on the origin with a destination in
// the middle and a spawn point in the first corner.
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 || width*height < 2 {
		panic("board needs at least two tiles")
	}

	b := &Board{
		width:  width,
		height: height,
		tiles:  make([]*Tile, width*height),
	}
	offsetX := float64(width-1) * 0.5
	offsetY := float64(height-1) * 0.5
	for y, i := 0, 0; y < height; y++ {
		for x := 0; x < width; x, i = x+1, i+1 {
			tile := &Tile{
				X:        x,
				Y:        y,
				position: utils.Vec2{X: float64(x) - offsetX, Y: float64(y) - offsetY},
			}
			if x > 0 {
				makeEastWestNeighbors(tile, b.tiles[i-1])
			}
			if y > 0 {
				makeNorthSouthNeighbors(tile, b.tiles[i-width])
			}
			tile.IsAlternative = (x&1 == 0) != (y&1 == 0)
			tile.clearPath()
			b.tiles[i] = tile
		}
	}

	b.ToggleDestination(b.tiles[len(b.tiles)/2])
	b.ToggleSpawnPoint(b.tiles[0])
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Tiles returns all tiles in row-major order. The slice must not be modified.
func (b *Board) Tiles() []*Tile { return b.tiles }

// Tile returns the tile at grid coordinates, or nil when out of bounds.
func (b *Board) Tile(x, y int) *Tile {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return b.tiles[x+y*b.width]
}

// TileAt maps a world-space point on the ground plane to the tile that contains it.
func (b *Board) TileAt(point utils.Vec2) *Tile {
	x := int(math.Floor(point.X + float64(b.width)*0.5))
	y := int(math.Floor(point.Y + float64(b.height)*0.5))
	return b.Tile(x, y)
}

// SpawnPointCount returns the number of spawn points. It is at least one once the
// board has been constructed.
func (b *Board) SpawnPointCount() int { return len(b.spawnPoints) }

// SpawnPoint returns the spawn point with the given index.
func (b *Board) SpawnPoint(index int) *Tile { return b.spawnPoints[index] }

// Destinations returns every destination tile in row-major order.
func (b *Board) Destinations() []*Tile {
	var out []*Tile
	for _, tile := range b.tiles {
		if tile.content == Destination {
			out = append(out, tile)
		}
	}
	return out
}

// ToggleDestination turns an empty tile into a destination or a destination back into
// an empty tile. Removing the last destination, or one whose removal strands part of
// the board, is rejected.
func (b *Board) ToggleDestination(tile *Tile) bool {
	switch tile.content {
	case Destination:
		return b.tryEdit(tile, Empty)
	case Empty:
		return b.tryEdit(tile, Destination)
	}
	return false
}

// ToggleWall places a wall on an empty tile or removes an existing wall.
func (b *Board) ToggleWall(tile *Tile) bool {
	switch tile.content {
	case Wall:
		return b.tryEdit(tile, Empty)
	case Empty:
		return b.tryEdit(tile, Wall)
	}
	return false
}

// ToggleTower places a tower on an empty tile, removes an existing tower, or upgrades a
// wall to a tower. The upgrade needs no search because both block paths.
func (b *Board) ToggleTower(tile *Tile) bool {
	switch tile.content {
	case Tower:
		return b.tryEdit(tile, Empty)
	case Empty:
		return b.tryEdit(tile, Tower)
	case Wall:
		tile.content = Tower
		return true
	}
	return false
}

// ToggleSpawnPoint adds or removes a spawn point. The last spawn point cannot be removed.
func (b *Board) ToggleSpawnPoint(tile *Tile) bool {
	switch tile.content {
	case SpawnPoint:
		if len(b.spawnPoints) <= 1 {
			return false
		}
		for i, sp := range b.spawnPoints {
			if sp == tile {
				b.spawnPoints = append(b.spawnPoints[:i], b.spawnPoints[i+1:]...)
				break
			}
		}
		tile.content = Empty
		return true
	case Empty:
		tile.content = SpawnPoint
		b.spawnPoints = append(b.spawnPoints, tile)
		return true
	}
	return false
}

// tryEdit applies content speculatively and keeps it only if the search still succeeds.
func (b *Board) tryEdit(tile *Tile, content ContentType) bool {
	previous := tile.content
	tile.content = content
	if b.FindPaths() {
		return true
	}
	tile.content = previous
	b.FindPaths()
	return false
}
