package defs

import (
	"fmt"

	"go-grid-defense/internal/config"
)

// SpawnSequenceDef spawns Amount enemies of one kind, one every Cooldown seconds.
// The first enemy appears as soon as the sequence starts.
type SpawnSequenceDef struct {
	Enemy      string  `json:"enemy" yaml:"enemy" jsonschema:"title=Enemy id,required"`
	Amount     int     `json:"amount" yaml:"amount" jsonschema:"minimum=0"`
	Cooldown   float64 `json:"cooldown" yaml:"cooldown" jsonschema:"description=Seconds between spawns; must be positive"`
	SpawnPoint *int    `json:"spawn_point,omitempty" yaml:"spawn_point,omitempty" jsonschema:"description=Spawn point index; omitted means random"`
}

// SpawnPointIndex returns the configured spawn point or -1 for a random one.
func (s SpawnSequenceDef) SpawnPointIndex() int {
	if s.SpawnPoint == nil {
		return -1
	}
	return *s.SpawnPoint
}

// WaveDef — волна: последовательности идут одна за другой.
type WaveDef struct {
	Sequences []SpawnSequenceDef `json:"sequences" yaml:"sequences"`
}

// ScenarioDef — сценарий: волны идут одна за другой.
type ScenarioDef struct {
	Name  string    `json:"name" yaml:"name"`
	Waves []WaveDef `json:"waves" yaml:"waves"`
}

// Definitions is everything a game session needs from data files.
type Definitions struct {
	Enemies  map[string]*EnemyConfig
	Scenario ScenarioDef
	Tower    TowerDefinition
}

// Enemy returns the enemy configuration with the given id.
func (d *Definitions) Enemy(id string) (*EnemyConfig, error) {
	cfg, ok := d.Enemies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return cfg, nil
}

// Validate checks enemy ranges, tower stats, and that every sequence is playable.
func (d *Definitions) Validate() error {
	for _, cfg := range d.Enemies {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := d.Tower.Validate(); err != nil {
		return err
	}
	if len(d.Scenario.Waves) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyScenario, d.Scenario.Name)
	}
	for w, wave := range d.Scenario.Waves {
		for s, seq := range wave.Sequences {
			if _, err := d.Enemy(seq.Enemy); err != nil {
				return fmt.Errorf("wave %d sequence %d: %w", w+1, s+1, err)
			}
			if seq.Cooldown <= 0 {
				return fmt.Errorf("wave %d sequence %d: %w", w+1, s+1, ErrInvalidCooldown)
			}
			if seq.Amount < 0 {
				return fmt.Errorf("wave %d sequence %d: %w: amount %d", w+1, s+1, ErrInvalidRange, seq.Amount)
			}
		}
	}
	return nil
}

// Default returns the built-in enemy kinds and scenario.
func Default() *Definitions {
	small := &EnemyConfig{
		ID:         "ENEMY_SMALL",
		Name:       "Small",
		Scale:      FloatRange{Min: 0.5, Max: 0.7},
		PathOffset: FloatRange{Min: -0.4, Max: 0.4},
		Speed:      FloatRange{Min: 1.5, Max: 2},
		Health:     FloatRange{Min: 10, Max: 20},
	}
	medium := &EnemyConfig{
		ID:         "ENEMY_MEDIUM",
		Name:       "Medium",
		Scale:      FloatRange{Min: 0.8, Max: 1.2},
		PathOffset: FloatRange{Min: -0.25, Max: 0.25},
		Speed:      FloatRange{Min: 1, Max: 1.2},
		Health:     FloatRange{Min: 60, Max: 100},
	}
	large := &EnemyConfig{
		ID:         "ENEMY_LARGE",
		Name:       "Large",
		Scale:      FloatRange{Min: 1.6, Max: 2},
		PathOffset: FloatRange{Min: -0.1, Max: 0.1},
		Speed:      FloatRange{Min: 0.5, Max: 0.7},
		Health:     FloatRange{Min: 400, Max: 600},
	}

	return &Definitions{
		Enemies: map[string]*EnemyConfig{
			small.ID:  small,
			medium.ID: medium,
			large.ID:  large,
		},
		Tower: TowerDefinition{
			Range:           config.TowerRange,
			DamagePerSecond: config.TowerDamagePerSecond,
		},
		Scenario: ScenarioDef{
			Name: "Default",
			Waves: []WaveDef{
				{Sequences: []SpawnSequenceDef{
					{Enemy: medium.ID, Amount: 5, Cooldown: 1.5},
					{Enemy: small.ID, Amount: 8, Cooldown: 0.5},
				}},
				{Sequences: []SpawnSequenceDef{
					{Enemy: medium.ID, Amount: 10, Cooldown: 1},
					{Enemy: large.ID, Amount: 2, Cooldown: 4},
				}},
				{Sequences: []SpawnSequenceDef{
					{Enemy: small.ID, Amount: 20, Cooldown: 0.25},
					{Enemy: medium.ID, Amount: 10, Cooldown: 0.75},
					{Enemy: large.ID, Amount: 5, Cooldown: 2},
				}},
			},
		},
	}
}
