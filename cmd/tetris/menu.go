package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right on the Play entry, Enter to start.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Select
  Tab            - High scores
  Q              - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	seeded := s.runtime.Seed != 0

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s.runtime, s.difficulty, highScore(store, logger))
		if err != nil {
			return err
		}

		// Update config with any size changes
		s.runtime = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceQuit:
			return nil

		case tui.MenuChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, s.runtime.ScreenW, s.runtime.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil // User quit from scoreboard
			}

		case tui.MenuChoicePlay:
			s.difficulty = menuResult.Difficulty

			// A fixed --seed replays the same piece order every game.
			if !seeded {
				s.runtime.Seed = time.Now().UnixNano()
			}
			if _, err := playSession(s, store, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			// Loop back to menu
		}
	}
}
