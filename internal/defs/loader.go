// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a definitions file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// File is the on-disk layout of a definitions file.
type File struct {
	Enemies  []EnemyConfig    `json:"enemies" yaml:"enemies"`
	Tower    *TowerDefinition `json:"tower,omitempty" yaml:"tower,omitempty" jsonschema:"description=Overrides the built-in tower stats"`
	Scenario ScenarioDef      `json:"scenario" yaml:"scenario"`
}

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported definitions file extension %q", filepath.Ext(path))
}

// Load reads and validates a definitions file.
func Load(path string) (*Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d enemy definitions and scenario %q with %d waves", len(d.Enemies), d.Scenario.Name, len(d.Scenario.Waves))
	return d, nil
}

// Parse decodes and validates definitions. Tower stats fall back to the built-in ones.
func Parse(data []byte, format Format) (*Definitions, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown definitions format %d", format)
	}

	d := &Definitions{
		Enemies:  make(map[string]*EnemyConfig, len(f.Enemies)),
		Scenario: f.Scenario,
		Tower:    Default().Tower,
	}
	if f.Tower != nil {
		d.Tower = *f.Tower
	}
	for i := range f.Enemies {
		cfg := &f.Enemies[i]
		if _, dup := d.Enemies[cfg.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEnemy, cfg.ID)
		}
		d.Enemies[cfg.ID] = cfg
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
