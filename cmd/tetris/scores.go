package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 games and overall statistics.

Examples:
  tetris scores
  tetris scores --db ./scores.db
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded game")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	scores, err := store.TopScores(10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Lines", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-7s  %s\n",
			i+1, entry.Score, entry.Lines, entry.Level, entry.Difficulty, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines: %d  Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.BestLevel)
	return nil
}
