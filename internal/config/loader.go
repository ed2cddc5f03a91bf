package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "rescue.yaml"

// Load loads the rescue configuration.
// Search order: customPath -> ~/.rescue/configs/rescue.yaml -> ./configs/rescue.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only overrides what it names.
func Load(customPath string) (RescueConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RescueConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RescueConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRescueYAML)
	if err != nil {
		return DefaultRescueConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RescueConfig, error) {
	cfg := DefaultRescueConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RescueConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RescueConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rescue", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyPreset(cfg *RescueConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.Enemies = Range{Min: 6, Max: 9}
		cfg.Generation.PowerUps = Range{Min: 11, Max: 14}
		cfg.Player.MaxHealth = 300
	case DifficultyHard:
		cfg.Generation.Enemies = Range{Min: 15, Max: 20}
		cfg.Generation.PowerUps = Range{Min: 6, Max: 8}
		cfg.Player.MaxHealth = 150
	}
}
