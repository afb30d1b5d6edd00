package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads hexslide configuration.
// Search order: customPath -> ~/.hexslide/config.yaml -> ./configs/hexslide.yaml -> embedded default
func Load(customPath string) (HexslideConfig, error) {
	cfg := DefaultHexslideConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validate(cfg)
			}
			cfg = DefaultHexslideConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hexslide.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validate(cfg)
		}
		cfg = DefaultHexslideConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexslideYAML, &cfg); err != nil {
		return DefaultHexslideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexslide", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HexslideConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		cfg.Difficulty.Progression.Type = "none"
	}
}

func validate(cfg HexslideConfig) error {
	if _, ok := ParsePreset(string(cfg.Difficulty.Preset)); !ok {
		return fmt.Errorf("unknown difficulty preset %q", cfg.Difficulty.Preset)
	}
	for name, r := range map[string]MovesRange{
		"easy":   cfg.Difficulty.Easy,
		"normal": cfg.Difficulty.Normal,
		"hard":   cfg.Difficulty.Hard,
	} {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("invalid %s range %d-%d", name, r.Min, r.Max)
		}
	}
	if cfg.Solver.MaxDepth < 0 {
		return fmt.Errorf("invalid solver max_depth %d", cfg.Solver.MaxDepth)
	}
	return nil
}
