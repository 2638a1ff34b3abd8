package grid

import (
	"math/rand"
	"testing"

	"go-grid-defense/pkg/utils"
)

type tileSnapshot struct {
	content       ContentType
	hasPath       bool
	distance      int
	next          *Tile
	pathDirection Direction
	exitPoint     utils.Vec2
}

func snapshot(b *Board) []tileSnapshot {
	out := make([]tileSnapshot, len(b.tiles))
	for i, tile := range b.tiles {
		out[i] = tileSnapshot{
			content:       tile.content,
			hasPath:       tile.hasPath,
			distance:      tile.distance,
			next:          tile.nextOnPath,
			pathDirection: tile.pathDirection,
			exitPoint:     tile.exitPoint,
		}
	}
	return out
}

func assertSameField(t *testing.T, before, after []tileSnapshot) {
	t.Helper()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tile %d changed: before %+v, after %+v", i, before[i], after[i])
		}
	}
}

// assertValidField checks that every walkable tile has a route that ends on a destination.
func assertValidField(t *testing.T, b *Board) {
	t.Helper()
	maxHops := len(b.tiles)
	for _, tile := range b.tiles {
		if tile.content.BlocksPath() {
			continue
		}
		if !tile.HasPath() {
			t.Fatalf("walkable tile (%d,%d) has no path", tile.X, tile.Y)
		}
		current := tile
		for hops := 0; !current.IsDestination(); hops++ {
			if hops > maxHops {
				t.Fatalf("route from (%d,%d) does not terminate", tile.X, tile.Y)
			}
			next := current.NextTileOnPath()
			if next == nil {
				t.Fatalf("route from (%d,%d) stops at non-destination (%d,%d)", tile.X, tile.Y, current.X, current.Y)
			}
			if current.Neighbor(current.PathDirection()) != next {
				t.Fatalf("tile (%d,%d) points %v but next tile is (%d,%d)", current.X, current.Y, current.PathDirection(), next.X, next.Y)
			}
			if next.content.BlocksPath() {
				t.Fatalf("route from (%d,%d) enters blocked tile (%d,%d)", tile.X, tile.Y, next.X, next.Y)
			}
			if next.Distance() != current.Distance()-1 {
				t.Fatalf("distance does not decrease from (%d,%d) to (%d,%d)", current.X, current.Y, next.X, next.Y)
			}
			current = next
		}
	}
}

func TestNewBoardDefaults(t *testing.T) {
	b := NewBoard(5, 5)
	center := b.Tile(2, 2)
	if center.Content() != Destination {
		t.Fatalf("center content = %v, want Destination", center.Content())
	}
	if b.SpawnPointCount() != 1 || b.SpawnPoint(0) != b.Tile(0, 0) {
		t.Fatalf("expected single spawn point at (0,0)")
	}
	if center.Position() != (utils.Vec2{}) {
		t.Fatalf("center tile should sit on the origin, got %v", center.Position())
	}
	assertValidField(t, b)

	for _, tile := range b.Tiles() {
		if got, want := tile.Distance(), tile.ManhattanTo(center); got != want {
			t.Errorf("tile (%d,%d) distance = %d, want %d", tile.X, tile.Y, got, want)
		}
	}
}

func TestCheckerboardAlternation(t *testing.T) {
	b := NewBoard(4, 3)
	for _, tile := range b.Tiles() {
		for _, d := range []Direction{North, East} {
			if n := tile.Neighbor(d); n != nil && n.IsAlternative == tile.IsAlternative {
				t.Fatalf("tiles (%d,%d) and (%d,%d) share the same expansion order", tile.X, tile.Y, n.X, n.Y)
			}
		}
	}
}

func TestNeighborsAreSymmetric(t *testing.T) {
	b := NewBoard(3, 4)
	for _, tile := range b.Tiles() {
		for d := North; d <= West; d++ {
			n := tile.Neighbor(d)
			if n == nil {
				continue
			}
			if n.Neighbor(d.Opposite()) != tile {
				t.Fatalf("neighbor link %v of (%d,%d) is not mirrored", d, tile.X, tile.Y)
			}
		}
	}
	if b.Tile(0, 0).Neighbor(South) != nil || b.Tile(0, 0).Neighbor(West) != nil {
		t.Fatal("corner tile should have no south or west neighbor")
	}
}

func TestExitPointsSitOnEdges(t *testing.T) {
	b := NewBoard(5, 5)
	for _, tile := range b.Tiles() {
		if tile.IsDestination() {
			if tile.ExitPoint() != tile.Position() {
				t.Fatalf("destination exit point should be its center")
			}
			continue
		}
		next := tile.NextTileOnPath()
		mid := tile.Position().Add(next.Position()).Scale(0.5)
		if tile.ExitPoint() != mid {
			t.Fatalf("tile (%d,%d) exit point %v, want %v", tile.X, tile.Y, tile.ExitPoint(), mid)
		}
	}
}

func TestWallSeveringRouteIsRejected(t *testing.T) {
	b := NewBoard(5, 1)
	before := snapshot(b)

	if b.ToggleWall(b.Tile(1, 0)) {
		t.Fatal("wall between spawn and destination should be rejected")
	}
	if b.Tile(1, 0).Content() != Empty {
		t.Fatalf("content = %v, want Empty", b.Tile(1, 0).Content())
	}
	assertSameField(t, before, snapshot(b))
	assertValidField(t, b)
}

func TestWallAcceptedWhenRouteRemains(t *testing.T) {
	b := NewBoard(5, 5)
	wall := b.Tile(1, 1)
	if !b.ToggleWall(wall) {
		t.Fatal("wall should be accepted")
	}
	if wall.Content() != Wall || wall.HasPath() {
		t.Fatalf("wall tile content=%v hasPath=%v", wall.Content(), wall.HasPath())
	}
	assertValidField(t, b)

	if !b.ToggleWall(wall) {
		t.Fatal("removing the wall should be accepted")
	}
	if wall.Content() != Empty || !wall.HasPath() {
		t.Fatalf("removed wall content=%v hasPath=%v", wall.Content(), wall.HasPath())
	}
}

func TestRemovingEnclosedWallIsRejected(t *testing.T) {
	b := NewBoard(5, 5)
	for _, p := range [][2]int{{4, 4}, {3, 4}, {4, 3}} {
		if !b.ToggleWall(b.Tile(p[0], p[1])) {
			t.Fatalf("wall at %v should be accepted", p)
		}
	}
	before := snapshot(b)
	if b.ToggleWall(b.Tile(4, 4)) {
		t.Fatal("opening an unreachable pocket should be rejected")
	}
	assertSameField(t, before, snapshot(b))
}

func TestLastDestinationCannotBeRemoved(t *testing.T) {
	b := NewBoard(5, 5)
	before := snapshot(b)
	if b.ToggleDestination(b.Tile(2, 2)) {
		t.Fatal("removing the only destination should be rejected")
	}
	assertSameField(t, before, snapshot(b))

	other := b.Tile(4, 4)
	if !b.ToggleDestination(other) {
		t.Fatal("adding a destination should be accepted")
	}
	if !b.ToggleDestination(b.Tile(2, 2)) {
		t.Fatal("removing one of two destinations should be accepted")
	}
	if got := b.Destinations(); len(got) != 1 || got[0] != other {
		t.Fatalf("unexpected destinations %v", got)
	}
	assertValidField(t, b)
}

func TestFieldHeadsToNearestDestination(t *testing.T) {
	b := NewBoard(7, 1)
	b.ToggleDestination(b.Tile(6, 0))
	if got := b.Tile(5, 0).PathDirection(); got != East {
		t.Fatalf("tile next to the east destination points %v", got)
	}
	if got := b.Tile(1, 0).PathDirection(); got != East {
		t.Fatalf("tile (1,0) points %v, want East toward the center", got)
	}
	if got := b.Tile(4, 0).Distance(); got != 1 && got != 2 {
		t.Fatalf("unexpected distance %d", got)
	}
}

func TestSpawnPointInvariant(t *testing.T) {
	b := NewBoard(5, 5)
	only := b.SpawnPoint(0)
	if b.ToggleSpawnPoint(only) {
		t.Fatal("removing the last spawn point should be a no-op")
	}
	if b.SpawnPointCount() != 1 || only.Content() != SpawnPoint {
		t.Fatal("spawn point was removed")
	}

	second := b.Tile(4, 4)
	if !b.ToggleSpawnPoint(second) || b.SpawnPointCount() != 2 {
		t.Fatal("adding a spawn point should succeed")
	}
	if !b.ToggleSpawnPoint(only) || b.SpawnPointCount() != 1 || b.SpawnPoint(0) != second {
		t.Fatal("removing one of two spawn points should succeed")
	}
	if b.ToggleSpawnPoint(second) {
		t.Fatal("the remaining spawn point must stay")
	}
}

func TestTowerOverWall(t *testing.T) {
	b := NewBoard(5, 5)
	tile := b.Tile(3, 1)
	b.ToggleWall(tile)
	before := snapshot(b)

	if !b.ToggleTower(tile) || tile.Content() != Tower {
		t.Fatalf("wall should convert to tower, got %v", tile.Content())
	}
	after := snapshot(b)
	before[3+1*5].content = Tower
	assertSameField(t, before, after)

	if !b.ToggleTower(tile) || tile.Content() != Empty {
		t.Fatal("toggling a tower again should clear it")
	}
	assertValidField(t, b)
}

func TestEditsOnOccupiedTilesAreIgnored(t *testing.T) {
	b := NewBoard(5, 5)
	spawn := b.SpawnPoint(0)
	dest := b.Tile(2, 2)
	if b.ToggleWall(spawn) || b.ToggleTower(dest) || b.ToggleDestination(spawn) || b.ToggleSpawnPoint(dest) {
		t.Fatal("edits on spawn points and destinations must be ignored")
	}
}

func TestTileAt(t *testing.T) {
	b := NewBoard(4, 3)
	for _, tile := range b.Tiles() {
		if got := b.TileAt(tile.Position()); got != tile {
			t.Fatalf("TileAt(center of (%d,%d)) returned another tile", tile.X, tile.Y)
		}
		corner := tile.Position().Add(utils.Vec2{X: 0.49, Y: -0.49})
		if got := b.TileAt(corner); got != tile {
			t.Fatalf("TileAt near corner of (%d,%d) returned another tile", tile.X, tile.Y)
		}
	}
	outside := []utils.Vec2{{X: -2.01, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1.5}, {X: 0, Y: -1.6}}
	for _, p := range outside {
		if b.TileAt(p) != nil {
			t.Fatalf("TileAt(%v) should be outside the board", p)
		}
	}
}

func TestRepeatedSearchesAreIndependent(t *testing.T) {
	b := NewBoard(6, 6)
	b.ToggleWall(b.Tile(2, 2))
	first := snapshot(b)
	for i := 0; i < 3; i++ {
		if !b.FindPaths() {
			t.Fatal("search on a valid board failed")
		}
		assertSameField(t, first, snapshot(b))
	}
}

func TestRandomEditsKeepFieldValid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard(9, 7)
	for i := 0; i < 400; i++ {
		tile := b.Tile(rng.Intn(b.Width()), rng.Intn(b.Height()))
		before := snapshot(b)
		var applied bool
		switch rng.Intn(4) {
		case 0, 1:
			applied = b.ToggleWall(tile)
		case 2:
			applied = b.ToggleTower(tile)
		default:
			applied = b.ToggleDestination(tile)
		}
		if !applied {
			assertSameField(t, before, snapshot(b))
		}
		assertValidField(t, b)
		if b.SpawnPointCount() < 1 || len(b.Destinations()) < 1 {
			t.Fatal("board lost its last spawn point or destination")
		}
	}
}

func TestDestinationForgetsOldDirection(t *testing.T) {
	b := NewBoard(4, 1)
	end := b.Tile(3, 0)
	if end.PathDirection() != West {
		t.Fatalf("dead end should point west, got %v", end.PathDirection())
	}
	if !b.ToggleDestination(end) {
		t.Fatal("second destination should be accepted")
	}
	if end.PathDirection() != North || end.ExitPoint() != end.Position() {
		t.Fatalf("destination kept path state: direction %v", end.PathDirection())
	}

	before := snapshot(b)
	if b.ToggleWall(b.Tile(1, 0)) {
		t.Fatal("wall cutting off the spawn point should be rejected")
	}
	assertSameField(t, before, snapshot(b))

	// Отклонённое снятие назначения тоже откатывается без следов.
	if !b.ToggleDestination(b.Tile(2, 0)) {
		t.Fatal("removing one of two destinations should be accepted")
	}
	before = snapshot(b)
	if b.ToggleDestination(end) {
		t.Fatal("removing the last destination should be rejected")
	}
	assertSameField(t, before, snapshot(b))
}

func TestBlockedTileKeepsPassThroughDirection(t *testing.T) {
	b := NewBoard(5, 5)
	wall := b.Tile(1, 2)
	if !b.ToggleWall(wall) {
		t.Fatal("wall should be accepted")
	}
	if wall.HasPath() {
		t.Fatal("blocked tile must not count as reached")
	}
	next := wall.NextTileOnPath()
	if next == nil || wall.Neighbor(wall.PathDirection()) != next || !next.HasPath() {
		t.Fatal("blocked tile next to the field should still lead somewhere")
	}
}
