// internal/system/wave.go
package system

import (
	"fmt"

	"go-grid-defense/internal/defs"
)

// Spawner places a new enemy on the board. A negative spawn point asks for a random one.
type Spawner interface {
	SpawnEnemy(spawnPoint int, cfg *defs.EnemyConfig)
}

// Stage is one timed step of a scenario. Progress consumes deltaTime and returns a
// negative value while the stage is still running, or the unused time once it finished.
type Stage interface {
	Progress(deltaTime float64) float64
}

// SequenceState spawns a fixed amount of one enemy kind with a cooldown between spawns.
type SequenceState struct {
	def      defs.SpawnSequenceDef
	config   *defs.EnemyConfig
	spawner  Spawner
	count    int
	cooldown float64
	done     bool
}

func newSequenceState(def defs.SpawnSequenceDef, cfg *defs.EnemyConfig, spawner Spawner) *SequenceState {
	// Накопитель стартует полным: первый враг появляется сразу.
	return &SequenceState{def: def, config: cfg, spawner: spawner, cooldown: def.Cooldown}
}

// Progress spawns one enemy per elapsed cooldown.
func (s *SequenceState) Progress(deltaTime float64) float64 {
	if s.done {
		return deltaTime
	}
	s.cooldown += deltaTime
	for s.cooldown >= s.def.Cooldown {
		s.cooldown -= s.def.Cooldown
		if s.count >= s.def.Amount {
			s.done = true
			return s.cooldown
		}
		s.count++
		s.spawner.SpawnEnemy(s.def.SpawnPointIndex(), s.config)
	}
	return -1
}

// Spawned returns how many enemies the sequence has produced so far.
func (s *SequenceState) Spawned() int { return s.count }

// Timeline runs its stages one after another, handing leftover time from a finished
// stage to the next so no time is lost at the boundaries.
type Timeline[S Stage] struct {
	stages []S
	index  int
}

// NewTimeline returns a timeline positioned at its first stage.
func NewTimeline[S Stage](stages []S) *Timeline[S] {
	return &Timeline[S]{stages: stages}
}

// Progress advances the current stage and returns the leftover time once every stage
// finished, or a negative value while one is still running. A timeline without
// stages finishes immediately.
func (t *Timeline[S]) Progress(deltaTime float64) float64 {
	for t.index < len(t.stages) {
		deltaTime = t.stages[t.index].Progress(deltaTime)
		if deltaTime < 0 {
			return -1
		}
		t.index++
	}
	return deltaTime
}

// Index returns the position of the running stage; it equals Len once finished.
func (t *Timeline[S]) Index() int { return t.index }

// Len returns the number of stages.
func (t *Timeline[S]) Len() int { return len(t.stages) }

// Finished reports whether every stage completed.
func (t *Timeline[S]) Finished() bool { return t.index >= len(t.stages) }

// WaveState runs the sequences of one wave in order.
type WaveState = Timeline[*SequenceState]

// ScenarioState runs the waves of a scenario in order.
type ScenarioState struct {
	name  string
	waves *Timeline[*WaveState]
}

// NewScenarioState resolves every sequence's enemy and returns the scenario at its start.
func NewScenarioState(d *defs.Definitions, spawner Spawner) (*ScenarioState, error) {
	waves := make([]*WaveState, 0, len(d.Scenario.Waves))
	for w, wave := range d.Scenario.Waves {
		sequences := make([]*SequenceState, 0, len(wave.Sequences))
		for s, seq := range wave.Sequences {
			cfg, err := d.Enemy(seq.Enemy)
			if err != nil {
				return nil, fmt.Errorf("wave %d sequence %d: %w", w+1, s+1, err)
			}
			if seq.Cooldown <= 0 {
				return nil, fmt.Errorf("wave %d sequence %d: %w", w+1, s+1, defs.ErrInvalidCooldown)
			}
			sequences = append(sequences, newSequenceState(seq, cfg, spawner))
		}
		waves = append(waves, NewTimeline(sequences))
	}
	return &ScenarioState{name: d.Scenario.Name, waves: NewTimeline(waves)}, nil
}

// Progress advances the scenario and reports whether it is still running.
func (s *ScenarioState) Progress(deltaTime float64) bool {
	return s.waves.Progress(deltaTime) < 0
}

// Name returns the scenario name.
func (s *ScenarioState) Name() string { return s.name }

// Wave returns the 1-based number of the running wave, capped at the wave count.
func (s *ScenarioState) Wave() int {
	if s.waves.Finished() {
		return s.waves.Len()
	}
	return s.waves.Index() + 1
}

// WaveCount returns the number of waves in the scenario.
func (s *ScenarioState) WaveCount() int { return s.waves.Len() }

// Finished reports whether every wave completed.
func (s *ScenarioState) Finished() bool { return s.waves.Finished() }
