package config

import (
	_ "embed"
)

//go:embed defaults/hexslide.yaml
var defaultHexslideYAML []byte

//go:embed defaults/bank.txt
var defaultBank []byte

// DefaultHexslideConfig returns the default hexslide configuration.
func DefaultHexslideConfig() HexslideConfig {
	return HexslideConfig{
		Bank: BankConfig{
			Path: "",
		},
		Storage: StorageConfig{
			Path:    "~/.hexslide/progress.db",
			Enabled: true,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Easy:   MovesRange{Min: 1, Max: 1},
			Normal: MovesRange{Min: 1, Max: 3},
			Hard:   MovesRange{Min: 2, Max: 35},
			Progression: ProgressionConfig{
				Type:  "solved",
				MaxAt: 20,
			},
		},
		Solver: SolverConfig{
			MaxDepth: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration YAML.
func GetDefaultYAML() []byte {
	return defaultHexslideYAML
}

// DefaultBank returns the embedded puzzle bank in text format.
func DefaultBank() []byte {
	return defaultBank
}
