// internal/entity/factory.go
package entity

import "go-grid-defense/internal/defs"

// Random draws a value from a configured range.
type Random interface {
	Range(r defs.FloatRange) float64
}

// EnemyFactory creates enemies from configurations and keeps recycled ones for reuse.
type EnemyFactory struct {
	rng    Random
	sink   Sink
	pool   []*Enemy
	active int
}

// NewEnemyFactory returns a factory whose enemies report their fate to sink.
func NewEnemyFactory(rng Random, sink Sink) *EnemyFactory {
	return &EnemyFactory{rng: rng, sink: sink}
}

// Get returns an enemy with stats drawn from cfg. It still has to be placed with SpawnOn.
func (f *EnemyFactory) Get(cfg *defs.EnemyConfig) *Enemy {
	var e *Enemy
	if n := len(f.pool); n > 0 {
		e = f.pool[n-1]
		f.pool[n-1] = nil
		f.pool = f.pool[:n-1]
	} else {
		e = &Enemy{}
	}
	*e = Enemy{
		origin: f,
		sink:   f.sink,
		config: cfg,
	}
	e.Initialize(
		f.rng.Range(cfg.Scale),
		f.rng.Range(cfg.PathOffset),
		f.rng.Range(cfg.Speed),
		f.rng.Range(cfg.Health),
	)
	f.active++
	return e
}

// Reclaim takes an enemy back into the pool. Reclaiming twice is ignored.
func (f *EnemyFactory) Reclaim(e *Enemy) {
	if e.origin != f || e.recycled {
		return
	}
	e.recycled = true
	e.tileFrom, e.tileTo = nil, nil
	f.active--
	f.pool = append(f.pool, e)
}

// Active returns how many enemies are out of the pool.
func (f *EnemyFactory) Active() int { return f.active }

// Pooled returns how many enemies wait for reuse.
func (f *EnemyFactory) Pooled() int { return len(f.pool) }
