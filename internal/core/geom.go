// Package core provides fundamental types shared by the engine and the
// terminal front-end. It has no external dependencies (especially no Bubble
// Tea) so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
// Offsets are clamped to zero when the inner rectangle does not fit.
func (r Rect) Centered(w, h int) Rect {
	x := r.X + Clamp((r.W-w)/2, 0, r.W)
	y := r.Y + Clamp((r.H-h)/2, 0, r.H)
	return NewRect(x, y, w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
