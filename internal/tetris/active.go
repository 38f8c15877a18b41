package tetris

// Spawn origin of every new piece: box column, box row.
const (
	SpawnX = Width/2 - 2
	SpawnY = 0
)

// kickOffsets are the horizontal origin shifts tried, in order, when a
// rotation collides. No vertical kicks and no per-orientation tables.
var kickOffsets = [...]int{0, -1, 1}

// Piece is the falling piece: its kind, current cell offsets (after any
// rotations) and the board position of its 4x4 box.
type Piece struct {
	Kind  Kind
	Cells [4]Cell
	X, Y  int
}

// newPiece places k in its spawn orientation at the spawn origin.
func newPiece(k Kind) Piece {
	return Piece{Kind: k, Cells: k.Shape(), X: SpawnX, Y: SpawnY}
}

// Absolute returns the board coordinates of the piece's cells.
func (p Piece) Absolute() [4]Cell {
	var out [4]Cell
	for i, c := range p.Cells {
		out[i] = Cell{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// rotated returns the cells turned 90° clockwise about Cells[1].
// O pieces come back unchanged.
func (p Piece) rotated() [4]Cell {
	if p.Kind == O {
		return p.Cells
	}
	center := p.Cells[1]
	var out [4]Cell
	for i, c := range p.Cells {
		out[i] = Cell{
			X: center.X - (c.Y - center.Y),
			Y: center.Y + (c.X - center.X),
		}
	}
	return out
}

// rotate tries the clockwise rotation at each kick offset and commits the
// first placement that fits. Returns false, leaving p unchanged, when none
// does or the piece is an O.
func (p *Piece) rotate(b *Board) bool {
	if p.Kind == O {
		return false
	}
	cells := p.rotated()
	for _, dx := range kickOffsets {
		if !b.Collides(cells, p.X+dx, p.Y) {
			p.Cells = cells
			p.X += dx
			return true
		}
	}
	return false
}

// shift moves the piece by (dx, dy) if the target is free.
func (p *Piece) shift(b *Board, dx, dy int) bool {
	if b.Collides(p.Cells, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// collides reports whether the piece overlaps the board where it stands.
func (p Piece) collides(b *Board) bool {
	return b.Collides(p.Cells, p.X, p.Y)
}

// GhostY returns the row the piece would rest at if hard-dropped now.
func (p Piece) GhostY(b *Board) int {
	y := p.Y
	for !b.Collides(p.Cells, p.X, y+1) {
		y++
	}
	return y
}
