package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a file may set only the
// fields it wants to change. The result is validated.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TetrisConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTetris(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTetris decodes data on top of the hard-coded defaults. yaml.v3
// merges into the existing keys map, so a keys section overrides single
// commands and leaves the rest bound.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
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
