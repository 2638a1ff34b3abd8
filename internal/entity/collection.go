// internal/entity/collection.go
package entity

// Behaviour is anything the game advances once per tick and can send back to its pool.
type Behaviour interface {
	// GameUpdate advances the behaviour by deltaTime seconds and reports whether it
	// is still alive. A behaviour that returns false has already recycled itself.
	GameUpdate(deltaTime float64) bool
	Recycle()
}

// Collection is an ordered list of behaviours updated together.
type Collection[T Behaviour] struct {
	items []T
}

// Add appends b to the collection.
func (c *Collection[T]) Add(b T) {
	c.items = append(c.items, b)
}

// GameUpdate advances every behaviour, removing the ones that finished. Iteration runs
// from the back so removals never skip or revisit an element.
func (c *Collection[T]) GameUpdate(deltaTime float64) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if !c.items[i].GameUpdate(deltaTime) {
			last := len(c.items) - 1
			copy(c.items[i:], c.items[i+1:])
			var zero T
			c.items[last] = zero
			c.items = c.items[:last]
		}
	}
}

// Clear recycles every behaviour and empties the collection.
func (c *Collection[T]) Clear() {
	for i := range c.items {
		c.items[i].Recycle()
	}
	clear(c.items)
	c.items = c.items[:0]
}

// IsEmpty reports whether nothing is left to update.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Len returns the number of behaviours.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns the behaviours in insertion order. The slice is only valid until the
// next Add, GameUpdate or Clear.
func (c *Collection[T]) Items() []T { return c.items }
