// Package loop drives a tetris.Game in real time. Two clocks run side by
// side: a fixed frame cadence for input and publishing, and a level-dependent
// drop interval for gravity. Frame rate never changes game speed.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// DefaultFrameRate is the publishing cadence in frames per second.
const DefaultFrameRate = 60

// Options configures a Loop. Zero fields take defaults.
type Options struct {
	Clock     Clock
	Curve     Curve
	FrameRate int
	Publisher Publisher
	Scores    ScoreSink
	Logger    *log.Logger
}

// Loop owns the game for the length of a session. It is single-threaded:
// Frame and Run must be called from one goroutine.
type Loop struct {
	game   *tetris.Game
	clock  Clock
	curve  Curve
	budget time.Duration
	pub    Publisher
	scores ScoreSink
	logger *log.Logger

	paused   bool
	settled  bool // the current game has reached the score sink
	lastTick time.Time
	snapshot tetris.Snapshot
}

// New wraps game in a loop. The drop timer starts now.
func New(game *tetris.Game, opts Options) *Loop {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Curve == (Curve{}) {
		opts.Curve = DefaultCurve()
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	l := &Loop{
		game:   game,
		clock:  opts.Clock,
		curve:  opts.Curve,
		budget: time.Second / time.Duration(opts.FrameRate),
		pub:    opts.Publisher,
		scores: opts.Scores,
		logger: opts.Logger,
	}
	l.lastTick = l.clock.Now()
	l.snapshot = l.capture()
	return l
}

// Frame runs one loop iteration without sleeping: apply cmd, let gravity
// act if the drop interval has elapsed, then publish. Input is applied
// before the drop check, so a move can still save a piece that is about to
// fall this frame. It reports whether the player asked to quit; a quit
// settles the running game first.
func (l *Loop) Frame(cmd core.Command) (quit bool) {
	now := l.clock.Now()

	if cmd == core.CommandQuit {
		l.Finish()
		return true
	}
	l.apply(cmd, now)

	if l.game.Phase() == tetris.PhasePlaying && !l.paused {
		if now.Sub(l.lastTick) > l.Interval() {
			// Phase was checked above; Tick cannot fail here.
			_ = l.game.Tick()
			l.lastTick = now
		}
	}

	l.drainEvents()
	l.snapshot = l.capture()
	if l.pub != nil {
		l.pub.Publish(l.snapshot)
	}
	return false
}

// apply executes one command. Piece commands outside play are dropped
// here; the engine would report them as ErrNotPlaying.
func (l *Loop) apply(cmd core.Command, now time.Time) {
	switch cmd {
	case core.CommandNone:
	case core.CommandPause:
		if l.game.Phase() != tetris.PhasePlaying {
			return
		}
		l.paused = !l.paused
		if !l.paused {
			l.lastTick = now
		}
		l.logger.Debug("pause toggled", "paused", l.paused)
	case core.CommandNewGame:
		l.Finish()
		l.game.Reset()
		l.settled = false
		l.paused = false
		l.lastTick = now
		l.logger.Debug("new game")
	default:
		if !cmd.IsPieceControl() || l.game.Phase() != tetris.PhasePlaying {
			return
		}
		if err := l.pieceOp(cmd); err != nil {
			l.logger.Error("piece command failed", "command", cmd, "error", err)
		}
	}
}

func (l *Loop) pieceOp(cmd core.Command) error {
	switch cmd {
	case core.CommandMoveLeft:
		return l.game.Move(-1)
	case core.CommandMoveRight:
		return l.game.Move(1)
	case core.CommandSoftDrop:
		return l.game.SoftDrop()
	case core.CommandHardDrop:
		return l.game.HardDrop()
	case core.CommandRotate:
		return l.game.Rotate()
	case core.CommandHold:
		return l.game.Hold()
	}
	return nil
}

// drainEvents logs game events and hands finished games to the score sink.
func (l *Loop) drainEvents() {
	for _, ev := range l.game.TakeEvents() {
		switch ev.Type {
		case tetris.EventLinesCleared:
			l.logger.Debug("lines cleared", "rows", ev.Cleared, "points", ev.Points, "score", ev.Score)
		case tetris.EventLevelUp:
			l.logger.Debug("level up", "level", ev.Level, "interval", l.curve.Interval(ev.Level))
		case tetris.EventGameOver:
			l.logger.Info("game over", "score", ev.Score, "lines", ev.Lines, "level", ev.Level)
			l.record(ev.Score, ev.Lines, ev.Level)
		}
	}
}

// Finish hands a game that is still in play to the score sink. Games
// without points are skipped and a game is recorded at most once. Frame
// calls it on quit and before a new game; callers that stop the loop some
// other way call it themselves.
func (l *Loop) Finish() {
	if l.settled || l.game.Phase() != tetris.PhasePlaying || l.game.Score() == 0 {
		return
	}
	l.logger.Info("game abandoned", "score", l.game.Score(), "lines", l.game.Lines(), "level", l.game.Level())
	l.record(l.game.Score(), l.game.Lines(), l.game.Level())
}

func (l *Loop) record(score, lines, level int) {
	l.settled = true
	if l.scores == nil {
		return
	}
	if err := l.scores.RecordGame(score, lines, level); err != nil {
		l.logger.Warn("could not record game", "score", score, "error", err)
	}
}

func (l *Loop) capture() tetris.Snapshot {
	s := l.game.Snapshot()
	s.Paused = l.paused
	return s
}

// Run steps frames at the configured rate until the input source yields
// Quit or ctx is done. Each frame sleeps for whatever is left of its
// budget; a slow frame is followed immediately by the next one.
func (l *Loop) Run(ctx context.Context, src InputSource) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	l.logger.Info("loop started", "budget", l.budget)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := l.clock.Now()
		if l.Frame(src.Poll()) {
			l.logger.Info("quit requested", "score", l.game.Score())
			return nil
		}

		rest := l.budget - l.clock.Now().Sub(start)
		if rest <= 0 {
			continue
		}
		timer.Reset(rest)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Snapshot returns the snapshot published by the latest frame.
func (l *Loop) Snapshot() tetris.Snapshot {
	return l.snapshot
}

// Paused reports whether gravity is suspended.
func (l *Loop) Paused() bool {
	return l.paused
}

// Interval returns the drop interval for the current level.
func (l *Loop) Interval() time.Duration {
	return l.curve.Interval(l.game.Level())
}

// FrameBudget returns the duration of one frame.
func (l *Loop) FrameBudget() time.Duration {
	return l.budget
}
