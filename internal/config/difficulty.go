package config

import "fmt"

// DifficultyPreset represents a named gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables speed-up with level.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset rewrites the timing section for a preset. Normal keeps
// whatever the file configured; the others replace the curve.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseDropMs = 1200
		cfg.Timing.DropDecay = 0.93
		cfg.Timing.MinDropMs = 80
	case DifficultyHard:
		cfg.Timing.BaseDropMs = 700
		cfg.Timing.DropDecay = 0.85
		cfg.Timing.MinDropMs = 30
	case DifficultyFixed:
		// Level still counts up but gravity keeps the level 1 pace.
		cfg.Timing.DropDecay = 1
		cfg.Timing.MinDropMs = min(cfg.Timing.MinDropMs, cfg.Timing.BaseDropMs)
	}
}
