package system

import (
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/grid"
)

type minRandom struct{}

func (minRandom) Range(r defs.FloatRange) float64 { return r.Min }

func enemyOn(f *entity.EnemyFactory, tile *grid.Tile) *entity.Enemy {
	e := f.Get(&defs.EnemyConfig{
		ID:         "TEST",
		Scale:      defs.Fixed(1),
		PathOffset: defs.Fixed(0),
		Speed:      defs.Fixed(1),
		Health:     defs.Fixed(100),
	})
	e.SpawnOn(tile)
	return e
}

func TestCombatTargeting(t *testing.T) {
	board := grid.NewBoard(5, 5)
	factory := entity.NewEnemyFactory(minRandom{}, nil)
	combat := NewCombatSystem(defs.TowerDefinition{Range: 1.5, DamagePerSecond: 25})
	combat.AddTower(board.Tile(0, 1))
	combat.AddTower(board.Tile(0, 1))
	if len(combat.Towers()) != 1 {
		t.Fatalf("towers = %d, want 1", len(combat.Towers()))
	}
	tower := combat.Towers()[0]

	near := enemyOn(factory, board.Tile(0, 0))   // distance 1
	farther := enemyOn(factory, board.Tile(1, 2)) // distance sqrt(2)
	outside := enemyOn(factory, board.Tile(2, 1)) // distance 2

	combat.Update(1, []*entity.Enemy{farther, outside, near})
	if tower.Target != near {
		t.Fatal("tower should lock onto the nearest enemy in range")
	}
	if near.Health() != 75 || farther.Health() != 100 || outside.Health() != 100 {
		t.Fatalf("health = %v %v %v, want 75 100 100", near.Health(), farther.Health(), outside.Health())
	}

	closest := enemyOn(factory, board.Tile(0, 1))
	combat.Update(0.5, []*entity.Enemy{closest, near, farther})
	if tower.Target != near {
		t.Fatal("tower should keep its target while it stays in range")
	}
	if near.Health() != 62.5 {
		t.Fatalf("health = %v, want 62.5", near.Health())
	}

	near.TakeDamage(1000)
	combat.Update(0.5, []*entity.Enemy{closest, near, farther})
	if tower.Target != closest {
		t.Fatal("tower should retarget once its enemy died")
	}

	combat.Update(0.5, []*entity.Enemy{outside})
	if tower.Target != nil {
		t.Fatal("tower should drop targets that left the enemy list or range")
	}
}

func TestCombatRegistryFollowsBoard(t *testing.T) {
	board := grid.NewBoard(5, 5)
	board.ToggleTower(board.Tile(1, 1))
	board.ToggleTower(board.Tile(3, 3))

	combat := NewCombatSystem(defs.TowerDefinition{Range: 1, DamagePerSecond: 1})
	combat.Sync(board)
	if len(combat.Towers()) != 2 {
		t.Fatalf("towers = %d, want 2", len(combat.Towers()))
	}
	combat.RemoveTower(board.Tile(1, 1))
	if len(combat.Towers()) != 1 || combat.Towers()[0].Tile != board.Tile(3, 3) {
		t.Fatal("RemoveTower removed the wrong tower")
	}
	combat.RemoveTower(board.Tile(0, 0))
	if len(combat.Towers()) != 1 {
		t.Fatal("removing a missing tower should be a no-op")
	}
}
