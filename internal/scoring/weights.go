package scoring

import (
	"fmt"
	"strings"
)

// Weights are the coefficients of the final score. Bonus is multiplied by
// a constant 100 and added regardless of any measurement.
type Weights struct {
	Semantic   float64 `yaml:"semantic" validate:"gte=0"`
	Skill      float64 `yaml:"skill" validate:"gte=0"`
	Experience float64 `yaml:"experience" validate:"gte=0"`
	Bonus      float64 `yaml:"bonus" validate:"gte=0"`
}

var (
	// PresetA is the default weighting.
	PresetA = Weights{Semantic: 0.40, Skill: 0.35, Experience: 0.25}
	// PresetB carries a fixed 15-point bonus on top of its measured terms.
	PresetB = Weights{Semantic: 0.35, Skill: 0.30, Experience: 0.20, Bonus: 0.15}
)

// Preset returns the weights for a named preset ("A" or "B", any case).
func Preset(name string) (Weights, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "A", "":
		return PresetA, nil
	case "B":
		return PresetB, nil
	default:
		return Weights{}, fmt.Errorf("unknown scoring preset %q", name)
	}
}

// Combine returns the unrounded weighted sum of the sub-scores.
func (w Weights) Combine(semantic, skill, experience float64) float64 {
	return w.Semantic*semantic + w.Skill*skill + w.Experience*experience + w.Bonus*fullScore
}
