package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/loop"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagSimDuration time.Duration
	flagSimGames    int
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless with random input",
	Long: `Run the real game loop without a terminal, feeding it random commands.
Each finished game is printed; the run stops after --games games or when
--duration runs out, whichever comes first.

The same --seed gives the same piece order and the same input stream.
Frame timing still follows the wall clock, so gravity can make two runs
drift apart.

Examples:
  tetris simulate
  tetris simulate --seed 42 --games 5
  tetris simulate --duration 2m --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Stop after this long")
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Stop after this many finished games")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished games to the scores database")
}

// simCommands weights the random input: mostly steering, sometimes a drop.
var simCommands = []core.Command{
	core.CommandNone, core.CommandNone, core.CommandNone, core.CommandNone,
	core.CommandMoveLeft, core.CommandMoveLeft,
	core.CommandMoveRight, core.CommandMoveRight,
	core.CommandRotate, core.CommandRotate,
	core.CommandSoftDrop,
	core.CommandHold,
	core.CommandHardDrop,
}

// simResults collects finished games and forwards them to an optional
// sink.
type simResults struct {
	games []tetris.Event
	next  loop.ScoreSink
}

func (r *simResults) RecordGame(score, lines, level int) error {
	r.games = append(r.games, tetris.Event{Type: tetris.EventGameOver, Score: score, Lines: lines, Level: level})
	if r.next != nil {
		return r.next.RecordGame(score, lines, level)
	}
	return nil
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagSimGames)
	}
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := s.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := &simResults{}
	high := 0
	if flagSimRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			results.next = store.Recorder(string(s.difficulty))
			high = highScore(store, logger)
		}
	}

	// The source sees each published snapshot: after a game over it starts
	// the next game, or quits once enough games are done.
	var last tetris.Snapshot
	rng := rand.New(rand.NewSource(seed))
	src := loop.SourceFunc(func() core.Command {
		if last.Phase == tetris.PhaseGameOver {
			if len(results.games) >= flagSimGames {
				return core.CommandQuit
			}
			return core.CommandNewGame
		}
		return simCommands[rng.Intn(len(simCommands))]
	})

	cfg := s.tuned()
	lp := loop.New(tetris.New(seed, high), loop.Options{
		Curve:     cfg.Curve(),
		FrameRate: s.runtime.TickRate,
		Publisher: loop.PublisherFunc(func(snap tetris.Snapshot) { last = snap }),
		Scores:    results,
		Logger:    logger.With("mode", "simulate"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), flagSimDuration)
	defer cancel()

	fmt.Printf("Simulating with seed %d (%s)\n", seed, s.difficulty)
	start := time.Now()
	err = lp.Run(ctx, src)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	for i, g := range results.games {
		fmt.Printf("  game %d: score %d  lines %d  level %d\n", i+1, g.Score, g.Lines, g.Level)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		snap := lp.Snapshot()
		fmt.Printf("Stopped after %s; unfinished game at score %d  lines %d  level %d\n",
			flagSimDuration, snap.Score, snap.Lines, snap.Level)
		return nil
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
