package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads Lane Racer configuration.
// Search order: customPath -> ~/.arcade/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Files are overlaid on the defaults, so a file may set only the keys it
// cares about. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer.yaml", customPath, defaultRacerYAML, DefaultRacerConfig, RacerConfig.Validate)
}

// load implements the search order shared by every game config.
func load[T any](filename, customPath string, embedded []byte, defaults func() T, validate func(T) error) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath, defaults, validate)
		if err != nil {
			return defaults(), err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path, defaults, validate); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded, defaults, validate)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile[T any](path string, defaults func() T, validate func(T) error) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data, defaults, validate)
	if err != nil {
		return defaults(), fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

func decode[T any](data []byte, defaults func() T, validate func(T) error) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
