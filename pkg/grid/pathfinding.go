// pkg/grid/pathfinding.go
package grid

// frontier — FIFO-очередь для поиска в ширину. Буфер переиспользуется между поисками.
type frontier struct {
	items []*Tile
	head  int
}

func (f *frontier) reset() {
	clear(f.items)
	f.items = f.items[:0]
	f.head = 0
}

func (f *frontier) push(t *Tile) {
	if t != nil {
		f.items = append(f.items, t)
	}
}

func (f *frontier) pop() *Tile {
	t := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	return t
}

func (f *frontier) len() int {
	return len(f.items) - f.head
}

// Expansion orders for the checkerboard. They mirror each other so that neighboring
// tiles prefer different axes and paths zigzag instead of running in long L shapes.
var (
	alternativeOrder = [4]Direction{North, South, East, West}
	regularOrder     = [4]Direction{West, East, South, North}
)

// FindPaths recomputes the direction field from scratch with a breadth-first search
// seeded at every destination. It reports false when there is no destination or when
// some walkable tile cannot reach one; the field is then incomplete and the caller is
// expected to restore a valid board.
func (b *Board) FindPaths() bool {
	b.frontier.reset()
	for _, tile := range b.tiles {
		if tile.content == Destination {
			tile.becomeDestination()
			b.frontier.push(tile)
		} else {
			tile.clearPath()
		}
	}

	if b.frontier.len() == 0 {
		return false
	}

	for b.frontier.len() > 0 {
		tile := b.frontier.pop()
		order := &regularOrder
		if tile.IsAlternative {
			order = &alternativeOrder
		}
		for _, d := range order {
			b.frontier.push(tile.growPathTo(d))
		}
	}

	for _, tile := range b.tiles {
		if !tile.hasPath && !tile.content.BlocksPath() {
			return false
		}
	}
	return true
}
