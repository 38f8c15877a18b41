package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/loop"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultTetrisConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
}

func TestDefaultCurveMatchesLoop(t *testing.T) {
	if got, want := DefaultTetrisConfig().Curve(), loop.DefaultCurve(); got != want {
		t.Errorf("Curve() = %+v, want %+v", got, want)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
timing:
  base_drop_ms: 800
keys:
  hold: ["h"]
`)
	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Timing.BaseDropMs != 800 {
		t.Errorf("BaseDropMs = %d, want 800", cfg.Timing.BaseDropMs)
	}
	if cfg.Timing.FrameRate != 60 || cfg.Timing.DropDecay != 0.9 {
		t.Errorf("unset timing fields lost their defaults: %+v", cfg.Timing)
	}
	if got := cfg.Keys["hold"]; !reflect.DeepEqual(got, []string{"h"}) {
		t.Errorf("hold keys = %v, want [h]", got)
	}
	if got := cfg.Keys["rotate"]; !reflect.DeepEqual(got, []string{"up", "w"}) {
		t.Errorf("rotate keys = %v, want defaults", got)
	}
	if got := cfg.Curve().Base; got != 800*time.Millisecond {
		t.Errorf("Curve().Base = %v, want 800ms", got)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "timing: [", "failed to parse"},
		{"zero fps", "timing:\n  frame_rate: 0\n", "frame_rate must be positive"},
		{"decay above one", "timing:\n  drop_decay: 1.5\n", "drop_decay"},
		{"min above base", "timing:\n  min_drop_ms: 2000\n", "exceeds base_drop_ms"},
		{"unknown command", "keys:\n  teleport: [\"t\"]\n", "unknown command"},
		{"empty binding", "keys:\n  pause: []\n", "no keys bound to pause"},
		{"duplicate key", "keys:\n  hold: [\"a\"]\n", "bound to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTetris(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestBindings(t *testing.T) {
	bindings, err := DefaultTetrisConfig().Bindings()
	if err != nil {
		t.Fatalf("Bindings() failed: %v", err)
	}
	for _, cmd := range core.Commands {
		if len(bindings[cmd]) == 0 {
			t.Errorf("%s has no keys", cmd)
		}
	}
	if got := bindings[core.CommandHardDrop]; !reflect.DeepEqual(got, []string{" "}) {
		t.Errorf("hard drop keys = %q", got)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		level1  time.Duration
		level10 time.Duration
	}{
		{DifficultyNormal, 1000 * time.Millisecond, 387 * time.Millisecond},
		{DifficultyFixed, 1000 * time.Millisecond, 1000 * time.Millisecond},
		{DifficultyEasy, 1200 * time.Millisecond, 624 * time.Millisecond},
		{DifficultyHard, 700 * time.Millisecond, 162 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset produced invalid config: %v", err)
			}
			curve := cfg.Curve()
			if got := curve.Interval(1); got != tt.level1 {
				t.Errorf("level 1 interval = %v, want %v", got, tt.level1)
			}
			if got := curve.Interval(10); got != tt.level10 {
				t.Errorf("level 10 interval = %v, want %v", got, tt.level10)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}
