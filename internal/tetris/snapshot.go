package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only copy of everything a renderer needs. It is a
// plain value: comparing two snapshots with == compares whole games.
type Snapshot struct {
	Board      [Height][Width]core.Color
	Phase      Phase
	Piece      Piece
	GhostY     int
	Next       [PreviewSize]Kind
	Hold       Kind
	HasHold    bool
	HoldLocked bool
	Score      int
	HighScore  int
	Level      int
	Lines      int
	Paused     bool // set by the game loop
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	held, hasHold := g.hold.Kind()
	return Snapshot{
		Board:      g.board.Rows(),
		Phase:      g.phase,
		Piece:      g.piece,
		GhostY:     g.piece.GhostY(&g.board),
		Next:       g.queue.Peek(),
		Hold:       held,
		HasHold:    hasHold,
		HoldLocked: g.hold.Locked(),
		Score:      g.score,
		HighScore:  g.highScore,
		Level:      g.level,
		Lines:      g.lines,
	}
}

// ActiveCells returns the board coordinates of the falling piece.
func (s Snapshot) ActiveCells() [4]Cell {
	return s.Piece.Absolute()
}

// GhostCells returns the board coordinates of the drop projection.
func (s Snapshot) GhostCells() [4]Cell {
	ghost := s.Piece
	ghost.Y = s.GhostY
	return ghost.Absolute()
}
