package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Start a game without the menu.

Default controls (change them in the config file's keys section):
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W            - Rotate
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - New game
  Q/Ctrl+C         - Quit
  ?                - Full help
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Speed curve from the config file
  hard   - Faster start, steeper speed-up
  fixed  - Level 1 speed for the whole game

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	snap, err := playSession(s, store, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Score: %d  Lines: %d  Level: %d\n", snap.Score, snap.Lines, snap.Level)
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		fmt.Println("New high score!")
	}
	return nil
}

// playSession runs one game in the terminal. Finished games go to store
// when it is available.
func playSession(s settings, store *storage.Store, logger *log.Logger) (tetris.Snapshot, error) {
	cfg := s.tuned()
	table, err := cfg.Bindings()
	if err != nil {
		return tetris.Snapshot{}, err
	}

	opts := tui.ModelOptions{
		Config:    s.runtime,
		Keys:      tui.NewKeyMapper(table),
		Curve:     cfg.Curve(),
		HighScore: highScore(store, logger),
		Logger:    logger.With("difficulty", s.difficulty),
	}
	if store != nil {
		opts.Scores = store.Recorder(string(s.difficulty))
	}
	return tui.Run(opts)
}
