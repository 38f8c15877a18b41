package core

// Color represents a foreground color for a screen or board cell.
// The zero value doubles as "empty" on the playfield.
type Color uint8

// Predefined colors. Piece colors follow the classic terminal palette:
// I cyan, J blue, L yellow, O white, S green, T magenta, Z red.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
)

