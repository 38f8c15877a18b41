package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Board is the grid of locked cells. core.ColorDefault marks an empty cell,
// any other color is a locked block of the kind that owns that color.
// Rows are indexed top to bottom.
type Board struct {
	cells [Height][Width]core.Color
}

// Collides reports whether shape placed with its box origin at (x, y)
// leaves the side walls, reaches the floor, or overlaps a locked cell.
// Cells above the top edge (row < 0) only take part in the wall check,
// so pieces may spawn partly above the visible area.
func (b *Board) Collides(shape [4]Cell, x, y int) bool {
	for _, c := range shape {
		bx, by := x+c.X, y+c.Y
		if bx < 0 || bx >= Width || by >= Height {
			return true
		}
		if by >= 0 && b.cells[by][bx] != core.ColorDefault {
			return true
		}
	}
	return false
}

// Lock writes shape at (x, y) into the board with color. Cells outside the
// playfield are dropped.
func (b *Board) Lock(shape [4]Cell, x, y int, color core.Color) {
	for _, c := range shape {
		bx, by := x+c.X, y+c.Y
		if by < 0 || by >= Height || bx < 0 || bx >= Width {
			continue
		}
		b.cells[by][bx] = color
	}
}

// ClearFullRows removes every full row, collapsing the rows above it and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		cleared++
		// Shift everything above down by one; y is re-examined because the
		// row above now sits at this index.
		copy(b.cells[1:y+1], b.cells[0:y])
		b.cells[0] = [Width]core.Color{}
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == core.ColorDefault {
			return false
		}
	}
	return true
}

// Cell returns the color at (x, y); out-of-range positions read as empty.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// set overwrites one cell. Out-of-range positions are ignored.
func (b *Board) set(x, y int, c core.Color) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.cells[y][x] = c
}

// Rows returns a copy of the whole grid.
func (b *Board) Rows() [Height][Width]core.Color {
	return b.cells
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells = [Height][Width]core.Color{}
}

// filled counts occupied cells.
func (b *Board) filled() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}
