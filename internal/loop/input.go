package loop

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// InputSource hands the loop at most one decoded command per frame.
// Poll must not block; it returns core.CommandNone when nothing is pending.
type InputSource interface {
	Poll() core.Command
}

// ChannelSource adapts a command channel to InputSource.
type ChannelSource <-chan core.Command

// Poll takes one pending command without waiting. A closed channel reads
// as Quit.
func (c ChannelSource) Poll() core.Command {
	select {
	case cmd, ok := <-c:
		if !ok {
			return core.CommandQuit
		}
		return cmd
	default:
		return core.CommandNone
	}
}

// SourceFunc adapts a function to InputSource.
type SourceFunc func() core.Command

// Poll calls f.
func (f SourceFunc) Poll() core.Command {
	return f()
}

// Publisher receives the snapshot produced at the end of every frame.
type Publisher interface {
	Publish(tetris.Snapshot)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(tetris.Snapshot)

// Publish calls f(s).
func (f PublisherFunc) Publish(s tetris.Snapshot) {
	f(s)
}

// ScoreSink persists finished games. Errors are logged by the loop and
// never stop play.
type ScoreSink interface {
	RecordGame(score, lines, level int) error
}
