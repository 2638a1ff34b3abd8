// internal/defs/enemies.go
package defs

import "fmt"

// Limits for enemy configuration values.
const (
	MinScale      = 0.5
	MaxScale      = 2.0
	MaxPathOffset = 0.4
	MinSpeed      = 0.2
	MaxSpeed      = 5.0
	MinHealth     = 10.0
	MaxHealth     = 1000.0
)

// EnemyConfig holds the ranges an enemy's stats are drawn from when it spawns.
type EnemyConfig struct {
	ID         string     `json:"id" yaml:"id" jsonschema:"title=Enemy id,minLength=1,required"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Scale      FloatRange `json:"scale" yaml:"scale" jsonschema:"description=Model scale from 0.5 to 2"`
	PathOffset FloatRange `json:"path_offset" yaml:"path_offset" jsonschema:"description=Lateral offset from the path center between -0.4 and 0.4"`
	Speed      FloatRange `json:"speed" yaml:"speed" jsonschema:"description=Tiles per second from 0.2 to 5"`
	Health     FloatRange `json:"health" yaml:"health" jsonschema:"description=Hit points from 10 to 1000"`
}

// Validate checks every range against the allowed limits.
func (c *EnemyConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: enemy without id", ErrInvalidRange)
	}
	checks := []error{
		c.Scale.check("scale", MinScale, MaxScale),
		c.PathOffset.check("path_offset", -MaxPathOffset, MaxPathOffset),
		c.Speed.check("speed", MinSpeed, MaxSpeed),
		c.Health.check("health", MinHealth, MaxHealth),
	}
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("enemy %s: %w", c.ID, err)
		}
	}
	return nil
}
