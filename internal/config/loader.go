package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlaster loads Blaster configuration.
// Search order: customPath -> ~/.arcade/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
func LoadBlaster(customPath string) (BlasterConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultBlasterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("blaster.yaml"), filepath.Join("configs", "blaster.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlasterYAML, &cfg); err != nil {
		return DefaultBlasterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or invalid files are skipped.
func tryLoad(path string) (BlasterConfig, bool) {
	cfg := DefaultBlasterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlasterPreset modifies the config based on a difficulty preset.
// Normal (and no preset) keeps the configured values.
func ApplyBlasterPreset(cfg *BlasterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.PowerUps.SpawnChance *= 2
		cfg.PowerUps.LifetimeMs += cfg.PowerUps.LifetimeMs / 2
	case DifficultyHard:
		cfg.PowerUps.SpawnChance /= 2
		cfg.PowerUps.MaxActive = max(1, cfg.PowerUps.MaxActive-1)
		cfg.PowerUps.LifetimeMs /= 2
	}
}
