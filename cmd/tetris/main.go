// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start menu (same as 'tetris menu')
//	tetris play              - Start a game right away
//	tetris menu              - Menu with difficulty picker and high scores
//	tetris scores            - Show the top 10 games
//	tetris simulate          - Play headless with random input
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: from config, 60)
//	--seed <value>        - RNG seed for reproducible piece order
//	--db <path>           - Database path (default: ~/.arcade/tetris.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.arcade/tetris.log, "" disables)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris for the terminal: seven pieces from a shuffled bag, a hold slot,
three-piece preview, ghost piece and a level-based speed curve.

Available commands:
  play      - Start a game right away
  menu      - Interactive menu (default)
  scores    - View high scores
  simulate  - Headless run with random input

Examples:
  tetris
  tetris play --difficulty hard
  tetris scores
  tetris simulate --seed 42 --duration 30s`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/tetris.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger creates the session logger. The terminal belongs to the TUI,
// so records go to a file. The returned closer is never nil.
func openLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if flagLogPath != "" {
		path, err := expandHome(flagLogPath)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// settings is everything a session needs from flags and the config file.
type settings struct {
	file       config.TetrisConfig // as loaded, before the preset
	difficulty config.DifficultyPreset
	runtime    core.RuntimeConfig
}

// tuned returns the file config with the difficulty preset applied.
func (s settings) tuned() config.TetrisConfig {
	cfg := s.file
	config.ApplyTetrisPreset(&cfg, s.difficulty)
	return cfg
}

// loadSettings resolves the config file, the difficulty preset and the
// runtime flags. --fps overrides the configured frame rate.
func loadSettings() (settings, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return settings{}, err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return settings{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return settings{
		file:       cfg,
		difficulty: preset,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.FrameRate,
			Seed:     flagSeed,
		},
	}, nil
}

// openStore opens the scores database. Failure is reported and play goes
// on without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// highScore reads the best recorded score, or 0 without a store.
func highScore(store *storage.Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	high, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return high
}
