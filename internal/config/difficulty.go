package config

import "math"

// Progression types: what a round's difficulty advances with.
const (
	ProgressScore = "score" // Lanes crossed
	ProgressTime  = "time"  // Ticks survived
	ProgressNone  = "none"  // Stays at the initial level
)

// Ramp turns round progress into a lane speed multiplier. The level starts
// at initial_level and reaches 1.0 when progress hits max_at.
type Ramp struct {
	enabled    bool
	initial    float64
	maxAt      float64
	kind       string
	multiplier float64
}

// NewRamp creates a ramp from the difficulty section of the config.
func NewRamp(cfg DifficultyConfig) *Ramp {
	maxAt := float64(cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	return &Ramp{
		enabled:    cfg.Enabled,
		initial:    clamp01(cfg.InitialLevel),
		maxAt:      maxAt,
		kind:       cfg.Progression.Type,
		multiplier: cfg.Scaling.SpeedMultiplier,
	}
}

// Level returns the difficulty level in [initial_level, 1].
func (r *Ramp) Level(score, ticks int) float64 {
	if !r.enabled {
		return r.initial
	}
	var progress float64
	switch r.kind {
	case ProgressScore:
		progress = float64(score) / r.maxAt
	case ProgressTime:
		progress = float64(ticks) / r.maxAt
	}
	return r.initial + clamp01(progress)*(1-r.initial)
}

// SpeedScale returns the multiplier applied to newly generated lanes.
// A disabled ramp returns exactly 1 so configured speed ranges hold as written.
func (r *Ramp) SpeedScale(score, ticks int) float64 {
	if !r.enabled {
		return 1
	}
	return 1 + r.Level(score, ticks)*r.multiplier
}

func validProgression(kind string) bool {
	switch kind {
	case ProgressScore, ProgressTime, ProgressNone:
		return true
	}
	return false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
