// internal/app/tower_management.go
package app

import (
	"log"

	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

// ToggleWall places or removes a wall.
func (g *Game) ToggleWall(tile *grid.Tile) bool {
	return g.edit("wall", tile, g.Board.ToggleWall)
}

// ToggleTower places or removes a tower, or turns a wall into a tower.
func (g *Game) ToggleTower(tile *grid.Tile) bool {
	return g.edit("tower", tile, g.Board.ToggleTower)
}

// ToggleDestination adds or removes a destination.
func (g *Game) ToggleDestination(tile *grid.Tile) bool {
	return g.edit("destination", tile, g.Board.ToggleDestination)
}

// ToggleSpawnPoint adds or removes a spawn point.
func (g *Game) ToggleSpawnPoint(tile *grid.Tile) bool {
	return g.edit("spawn point", tile, g.Board.ToggleSpawnPoint)
}

// edit applies a board command and keeps the tower registry in step with the tile.
func (g *Game) edit(kind string, tile *grid.Tile, apply func(*grid.Tile) bool) bool {
	if tile == nil {
		return false
	}
	before := tile.Content()
	data := event.TileData{X: tile.X, Y: tile.Y, Edit: kind}
	if !apply(tile) {
		data.Content = before
		log.Printf("Правка отклонена: %s на (%d, %d), клетка %s", kind, tile.X, tile.Y, before)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EditRejected, Data: data})
		return false
	}

	after := tile.Content()
	if before == grid.Tower && after != grid.Tower {
		g.CombatSystem.RemoveTower(tile)
	}
	if after == grid.Tower && before != grid.Tower {
		g.CombatSystem.AddTower(tile)
	}
	data.Content = after
	g.EventDispatcher.Dispatch(event.Event{Type: event.TileChanged, Data: data})
	return true
}

// TowerTiles returns the tiles carrying a tower, in placement order.
func (g *Game) TowerTiles() []*grid.Tile {
	towers := g.CombatSystem.Towers()
	tiles := make([]*grid.Tile, len(towers))
	for i, t := range towers {
		tiles[i] = t.Tile
	}
	return tiles
}
