// Package config provides YAML-based configuration loading and difficulty
// management for hexslide.
package config

// HexslideConfig contains all configuration for hexslide.
type HexslideConfig struct {
	Bank       BankConfig       `yaml:"bank"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Solver     SolverConfig     `yaml:"solver"`
}

// BankConfig points at the puzzle bank. An empty path selects the embedded bank.
type BankConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig defines where progress is persisted.
type StorageConfig struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// SolverConfig bounds the breadth-first solver.
type SolverConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 = the 35-move encoding limit
}

// DifficultyConfig maps presets to solution-length ranges for random play.
type DifficultyConfig struct {
	Preset      DifficultyPreset  `yaml:"preset"`
	Easy        MovesRange        `yaml:"easy"`
	Normal      MovesRange        `yaml:"normal"`
	Hard        MovesRange        `yaml:"hard"`
	Progression ProgressionConfig `yaml:"progression"`
}

// MovesRange is an inclusive range of solution lengths.
type MovesRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n lies in the range.
func (r MovesRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// ProgressionConfig defines how the range widens as puzzles get solved.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "solved" or "none"
	MaxAt int    `yaml:"max_at"` // Solved count at which the hard range is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// RangeForPreset returns the solution-length range for a preset.
// The fixed preset plays the normal range without progression.
func (d DifficultyConfig) RangeForPreset(preset DifficultyPreset) MovesRange {
	switch preset {
	case DifficultyEasy:
		return d.Easy
	case DifficultyHard:
		return d.Hard
	default:
		return d.Normal
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
