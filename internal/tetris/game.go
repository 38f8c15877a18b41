package tetris

import "math/rand"

// Phase is the game state machine: Playing until a spawn collides, then
// GameOver until Reset.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// LinesPerLevel is how many cleared rows advance one level.
const LinesPerLevel = 10

// linePoints is the base award per lock, indexed by rows cleared.
var linePoints = [...]int{0, 100, 300, 500, 800}

// LevelForLines returns the level reached after clearing lines rows.
func LevelForLines(lines int) int {
	return 1 + lines/LinesPerLevel
}

// Points returns the award for clearing rows at level. Rows beyond four
// are paid as a four-row clear.
func Points(rows, level int) int {
	rows = min(max(rows, 0), len(linePoints)-1)
	return linePoints[rows] * level
}

// Game owns the complete state of one play session: board, bag, lookahead,
// hold, the falling piece and the counters. All methods are synchronous and
// bounded; nothing outside Game mutates the board or the piece.
type Game struct {
	seeds *rand.Rand

	board Board
	bag   *Bag
	queue *Queue
	hold  Hold
	piece Piece
	phase Phase

	score     int
	lines     int
	level     int
	highScore int

	events []Event
}

// New creates a game and starts the first round. seed drives every bag the
// game will use, so a fixed seed and input sequence always replay the same
// way. highScore is the best score known from earlier sessions.
func New(seed int64, highScore int) *Game {
	g := &Game{
		seeds:     rand.New(rand.NewSource(seed)),
		highScore: highScore,
	}
	g.Reset()
	return g
}

// Reset starts a new round from any phase: empty board, zeroed counters,
// empty hold, a fresh bag and lookahead, and the first piece spawned.
// The high score is kept.
func (g *Game) Reset() {
	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.level = 1
	g.hold = Hold{}
	g.events = nil
	g.phase = PhasePlaying

	g.bag = NewBag(g.seeds.Int63())
	g.queue = NewQueue(g.bag)
	g.spawnNext()
}

func (g *Game) requirePlaying(op string) error {
	if g.phase != PhasePlaying {
		return &PhaseError{Op: op, Phase: g.phase}
	}
	return nil
}

// Move shifts the piece dx columns. Blocked moves are ignored.
func (g *Game) Move(dx int) error {
	if err := g.requirePlaying("move"); err != nil {
		return err
	}
	g.piece.shift(&g.board, dx, 0)
	return nil
}

// SoftDrop moves the piece one row down if it can. It never locks.
func (g *Game) SoftDrop() error {
	if err := g.requirePlaying("soft drop"); err != nil {
		return err
	}
	g.piece.shift(&g.board, 0, 1)
	return nil
}

// Rotate turns the piece clockwise, trying the horizontal kicks.
// A rotation that fits nowhere is ignored.
func (g *Game) Rotate() error {
	if err := g.requirePlaying("rotate"); err != nil {
		return err
	}
	g.piece.rotate(&g.board)
	return nil
}

// HardDrop drops the piece to its resting row and locks it.
func (g *Game) HardDrop() error {
	if err := g.requirePlaying("hard drop"); err != nil {
		return err
	}
	for g.piece.shift(&g.board, 0, 1) {
	}
	g.lockAndResolve()
	return nil
}

// Hold banks the current kind. With an empty slot the next queued piece
// spawns; otherwise the held kind becomes the active piece at the spawn
// origin. Only one hold is allowed per piece; further calls are ignored
// until the next spawn.
func (g *Game) Hold() error {
	if err := g.requirePlaying("hold"); err != nil {
		return err
	}
	held, hadHeld, ok := g.hold.Swap(g.piece.Kind)
	if !ok {
		return nil
	}
	if hadHeld {
		g.place(held)
	} else {
		g.place(g.queue.Pop())
	}
	return nil
}

// Tick is one gravity step: the piece falls a row, or locks if it cannot.
func (g *Game) Tick() error {
	if err := g.requirePlaying("tick"); err != nil {
		return err
	}
	if g.piece.shift(&g.board, 0, 1) {
		return nil
	}
	g.lockAndResolve()
	return nil
}

// lockAndResolve commits the piece, clears rows, scores and spawns.
// Points use the level from before this clear.
func (g *Game) lockAndResolve() {
	g.board.Lock(g.piece.Cells, g.piece.X, g.piece.Y, g.piece.Kind.Color())

	if cleared := g.board.ClearFullRows(); cleared > 0 {
		points := Points(cleared, g.level)
		g.score += points
		g.lines += cleared
		prev := g.level
		g.level = LevelForLines(g.lines)

		g.emit(Event{Type: EventLinesCleared, Cleared: cleared, Points: points})
		if g.level > prev {
			g.emit(Event{Type: EventLevelUp})
		}
	}

	g.raiseHighScore()
	g.emit(Event{Type: EventLocked})
	g.spawnNext()
}

// spawnNext activates the front of the queue and re-enables hold.
func (g *Game) spawnNext() {
	g.hold.Unlock()
	g.place(g.queue.Pop())
}

// place puts a new piece of kind k at the spawn origin. A collision there
// ends the game without touching the board.
func (g *Game) place(k Kind) {
	g.piece = newPiece(k)
	if g.piece.collides(&g.board) {
		g.phase = PhaseGameOver
		g.raiseHighScore()
		g.emit(Event{Type: EventGameOver})
	}
}

func (g *Game) raiseHighScore() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

func (g *Game) emit(e Event) {
	e.Score = g.score
	e.Lines = g.lines
	e.Level = g.level
	g.events = append(g.events, e)
}

// TakeEvents returns the events recorded since the last call and clears
// the buffer.
func (g *Game) TakeEvents() []Event {
	out := g.events
	g.events = nil
	return out
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the points earned this round.
func (g *Game) Score() int { return g.score }

// Lines returns the rows cleared this round.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// HighScore returns the best score seen, including this round.
func (g *Game) HighScore() int { return g.highScore }

// Piece returns a copy of the falling piece.
func (g *Game) Piece() Piece { return g.piece }
