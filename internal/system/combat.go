// internal/system/combat.go
package system

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/grid"
)

// Tower is a laser tower standing on a board tile.
type Tower struct {
	Tile   *grid.Tile
	Target *entity.Enemy
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	def    defs.TowerDefinition
	towers []*Tower
}

func NewCombatSystem(def defs.TowerDefinition) *CombatSystem {
	return &CombatSystem{def: def}
}

// AddTower registers a tower on tile. Registering the same tile twice is ignored.
func (s *CombatSystem) AddTower(tile *grid.Tile) {
	if s.indexOf(tile) >= 0 {
		return
	}
	s.towers = append(s.towers, &Tower{Tile: tile})
}

// RemoveTower drops the tower on tile, if any.
func (s *CombatSystem) RemoveTower(tile *grid.Tile) {
	if i := s.indexOf(tile); i >= 0 {
		s.towers = append(s.towers[:i], s.towers[i+1:]...)
	}
}

// Sync makes the registry match the tower tiles on board.
func (s *CombatSystem) Sync(board *grid.Board) {
	s.towers = s.towers[:0]
	for _, tile := range board.Tiles() {
		if tile.Content() == grid.Tower {
			s.towers = append(s.towers, &Tower{Tile: tile})
		}
	}
}

// Towers returns the registered towers in placement order.
func (s *CombatSystem) Towers() []*Tower { return s.towers }

// ClearTargets makes every tower forget its target.
func (s *CombatSystem) ClearTargets() {
	for _, t := range s.towers {
		t.Target = nil
	}
}

func (s *CombatSystem) indexOf(tile *grid.Tile) int {
	for i, t := range s.towers {
		if t.Tile == tile {
			return i
		}
	}
	return -1
}

// Update lets every tower damage one enemy. A tower keeps its target while the enemy
// is alive and in range; otherwise it locks onto the nearest enemy in range.
func (s *CombatSystem) Update(deltaTime float64, enemies []*entity.Enemy) {
	damage := s.def.DamagePerSecond * deltaTime
	rangeSq := s.def.Range * s.def.Range
	for _, tower := range s.towers {
		center := tower.Tile.Position()
		var nearest *entity.Enemy
		var nearestSq float64
		keep := false
		for _, e := range enemies {
			if !e.Alive() {
				continue
			}
			d := e.WorldPosition().Sub(center)
			distSq := d.X*d.X + d.Y*d.Y
			if distSq > rangeSq {
				continue
			}
			if e == tower.Target {
				keep = true
				break
			}
			if nearest == nil || distSq < nearestSq {
				nearest, nearestSq = e, distSq
			}
		}
		if !keep {
			tower.Target = nearest
		}
		if tower.Target != nil {
			tower.Target.TakeDamage(damage)
		}
	}
}
