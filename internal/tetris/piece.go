// Package tetris implements the falling-block puzzle engine: the board,
// the 7-bag randomizer, piece movement and rotation, locking, line clears,
// hold, scoring and levels. It is pure logic with no I/O; the game loop and
// the terminal front-end drive it through Game.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of piece kinds and the size of one bag.
const KindCount = 7

// Cell is a column/row offset. Shape offsets live inside a 4x4 box with
// (0,0) at the top-left; absolute cells are board coordinates.
type Cell struct {
	X, Y int
}

type pieceDef struct {
	name  string
	cells [4]Cell
	color core.Color
}

// catalog holds the canonical spawn orientation of every kind.
// Index 1 of each cell list is the rotation center.
var catalog = [KindCount]pieceDef{
	I: {"I", [4]Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, core.ColorCyan},
	J: {"J", [4]Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, core.ColorBlue},
	L: {"L", [4]Cell{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, core.ColorYellow},
	O: {"O", [4]Cell{{1, 0}, {2, 0}, {1, 1}, {2, 1}}, core.ColorWhite},
	S: {"S", [4]Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, core.ColorGreen},
	T: {"T", [4]Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, core.ColorMagenta},
	Z: {"Z", [4]Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, core.ColorRed},
}

// Shape returns the canonical cell offsets of k.
func (k Kind) Shape() [4]Cell {
	return catalog[k].cells
}

// Color returns the color tag used for k on the board.
func (k Kind) Color() core.Color {
	return catalog[k].color
}

// String returns the letter name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return "?"
	}
	return catalog[k].name
}

// valid reports whether k is one of the seven kinds.
func (k Kind) valid() bool {
	return int(k) < KindCount
}
