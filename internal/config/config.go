// Package config provides YAML-based configuration for the game: gravity
// timing, difficulty presets and key bindings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/loop"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Keys   KeyBindings  `yaml:"keys"`
}

// TimingConfig defines the frame cadence and the gravity curve.
type TimingConfig struct {
	FrameRate  int     `yaml:"frame_rate"`   // Frames per second for input and rendering
	BaseDropMs int     `yaml:"base_drop_ms"` // Drop interval at level 1
	DropDecay  float64 `yaml:"drop_decay"`   // Interval multiplier per level
	MinDropMs  int     `yaml:"min_drop_ms"`  // Fastest drop interval
}

// KeyBindings maps a command name (see core.Command.String) to the keys
// that trigger it. Key names follow Bubble Tea's KeyMsg.String().
type KeyBindings map[string][]string

// Curve converts the timing section into the loop's drop curve.
func (c TetrisConfig) Curve() loop.Curve {
	return loop.Curve{
		Base:  time.Duration(c.Timing.BaseDropMs) * time.Millisecond,
		Decay: c.Timing.DropDecay,
		Min:   time.Duration(c.Timing.MinDropMs) * time.Millisecond,
	}
}

// Bindings resolves the key table into commands.
func (c TetrisConfig) Bindings() (map[core.Command][]string, error) {
	out := make(map[core.Command][]string, len(c.Keys))
	for name, keys := range c.Keys {
		cmd, ok := core.ParseCommand(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown command %q in keys", name)
		}
		out[cmd] = keys
	}
	return out, nil
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	if t.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", t.FrameRate)
	}
	if t.BaseDropMs <= 0 || t.MinDropMs <= 0 {
		return fmt.Errorf("config: drop intervals must be positive, got base %d min %d", t.BaseDropMs, t.MinDropMs)
	}
	if t.MinDropMs > t.BaseDropMs {
		return fmt.Errorf("config: min_drop_ms %d exceeds base_drop_ms %d", t.MinDropMs, t.BaseDropMs)
	}
	if t.DropDecay <= 0 || t.DropDecay > 1 {
		return fmt.Errorf("config: drop_decay must be in (0, 1], got %g", t.DropDecay)
	}

	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	owner := make(map[string]core.Command)
	for _, cmd := range core.Commands {
		keys := bindings[cmd]
		if len(keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s", cmd)
		}
		for _, k := range keys {
			if prev, taken := owner[k]; taken {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, cmd)
			}
			owner[k] = cmd
		}
	}
	return nil
}
