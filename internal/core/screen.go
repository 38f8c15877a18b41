package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
	Faint bool
}

// blank is the cell every position is reset to.
var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer with per-cell color.
// It decouples drawing from the terminal: the renderer writes runes and
// colors here and the platform converts rows into styled strings.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the renderer
// redraws every frame.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places an uncolored rune at the given position.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes uncolored text horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyled(x, y, text, Cell{})
}

// DrawStyled writes text using the color and attributes of style.
// Characters beyond the screen bounds are clipped.
func (s *Screen) DrawStyled(x, y int, text string, style Cell) {
	i := 0
	for _, r := range text {
		style.Rune = r
		s.SetCell(x+i, y, style)
		i++
	}
}

// DrawTextCentered draws text centered horizontally inside r at row y.
func (s *Screen) DrawTextCentered(r Rect, y int, text string, style Cell) {
	n := len([]rune(text))
	s.DrawStyled(r.X+(r.W-n)/2, y, text, style)
}

// DrawBox draws a double-line box outline.
func (s *Screen) DrawBox(r Rect, style Cell) {
	put := func(x, y int, ch rune) {
		style.Rune = ch
		s.SetCell(x, y, style)
	}

	put(r.X, r.Y, '╔')
	put(r.Right()-1, r.Y, '╗')
	put(r.X, r.Bottom()-1, '╚')
	put(r.Right()-1, r.Bottom()-1, '╝')

	for x := r.X + 1; x < r.Right()-1; x++ {
		put(x, r.Y, '═')
		put(x, r.Bottom()-1, '═')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		put(r.X, y, '║')
		put(r.Right()-1, y, '║')
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the plain text of the specified row.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
