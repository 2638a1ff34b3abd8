// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds the combat stats shared by every tower on the board.
type TowerDefinition struct {
	Range           float64 `json:"range" yaml:"range" jsonschema:"description=Targeting radius in tiles"`
	DamagePerSecond float64 `json:"damage_per_second" yaml:"damage_per_second"`
}

// Validate rejects non-positive stats.
func (t TowerDefinition) Validate() error {
	if t.Range <= 0 || t.DamagePerSecond < 0 {
		return fmt.Errorf("%w: tower range %g, damage %g", ErrInvalidRange, t.Range, t.DamagePerSecond)
	}
	return nil
}
