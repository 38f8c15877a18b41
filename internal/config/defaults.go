package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches
// defaults/tetris.yaml and is used when even the embedded file fails to
// parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			FrameRate:  60,
			BaseDropMs: 1000,
			DropDecay:  0.9,
			MinDropMs:  50,
		},
		Keys: DefaultKeyBindings(),
	}
}

// DefaultKeyBindings is the classic layout: arrows or WASD to steer,
// space to hard drop, c to hold.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		"move_left":  {"left", "a"},
		"move_right": {"right", "d"},
		"soft_drop":  {"down", "s"},
		"hard_drop":  {" "},
		"rotate":     {"up", "w"},
		"hold":       {"c", "C"},
		"pause":      {"p", "esc"},
		"new_game":   {"r"},
		"quit":       {"q", "ctrl+c"},
	}
}
