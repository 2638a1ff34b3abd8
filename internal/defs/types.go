// internal/defs/types.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validation errors returned by Definitions.Validate, wrapped with details.
var (
	ErrInvalidRange    = errors.New("invalid range")
	ErrInvalidCooldown = errors.New("spawn cooldown must be positive")
	ErrUnknownEnemy    = errors.New("unknown enemy")
	ErrEmptyScenario   = errors.New("scenario has no waves")
	ErrDuplicateEnemy  = errors.New("duplicate enemy id")
)

// FloatRange is an inclusive interval of float values. In data files it is written
// either as {"min": a, "max": b} or as a single number for a fixed value.
type FloatRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Fixed returns a range containing only v.
func Fixed(v float64) FloatRange {
	return FloatRange{Min: v, Max: v}
}

// Within reports whether the whole range lies inside [lo, hi] and is ordered.
func (r FloatRange) Within(lo, hi float64) bool {
	return r.Min <= r.Max && r.Min >= lo && r.Max <= hi
}

func (r FloatRange) check(name string, lo, hi float64) error {
	if !r.Within(lo, hi) {
		return fmt.Errorf("%w: %s [%g, %g] outside [%g, %g]", ErrInvalidRange, name, r.Min, r.Max, lo, hi)
	}
	return nil
}

type floatRangeFields FloatRange

func (r *FloatRange) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*r = Fixed(v)
		return nil
	}
	var f floatRangeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = FloatRange(f)
	return nil
}

func (r *FloatRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*r = Fixed(v)
		return nil
	}
	var f floatRangeFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*r = FloatRange(f)
	return nil
}
