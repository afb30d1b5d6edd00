package config

import "math"

// DifficultyManager picks the solution-length range for random puzzles based
// on how many puzzles the player has solved.
type DifficultyManager struct {
	cfg    DifficultyConfig
	preset DifficultyPreset
}

// NewDifficultyManager creates a new difficulty manager for the configured preset.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	preset := cfg.Preset
	if preset == "" {
		preset = DifficultyNormal
	}
	return &DifficultyManager{
		cfg:    cfg,
		preset: preset,
	}
}

// SetPreset overrides the configured preset.
func (d *DifficultyManager) SetPreset(preset DifficultyPreset) {
	d.preset = preset
}

// Preset returns the active preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	return d.preset
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return !IsFixedPreset(d.preset) && d.cfg.Progression.Type == "solved"
}

// Level returns the progression level (0.0 to 1.0) for a solved count.
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(solved)/maxAt, 0.0, 1.0)
}

// Range returns the solution-length range for a solved count. The preset's
// range moves toward the hard range as the level rises.
func (d *DifficultyManager) Range(solved int) MovesRange {
	base := d.cfg.RangeForPreset(d.preset)
	level := d.Level(solved)
	if level == 0 {
		return base
	}

	hard := d.cfg.Hard
	r := MovesRange{
		Min: lerp(base.Min, hard.Min, level),
		Max: lerp(base.Max, hard.Max, level),
	}
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

func lerp(from, to int, t float64) int {
	return from + int(math.Round(t*float64(to-from)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
