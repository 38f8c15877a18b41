package loop

import (
	"math"
	"time"
)

// Curve maps a level to the gravity interval:
//
//	Interval(level) = max(Min, round(Base * Decay^(level-1)))
//
// rounded to whole milliseconds.
type Curve struct {
	Base  time.Duration
	Decay float64
	Min   time.Duration
}

// DefaultCurve starts at one row per second and speeds up 10% per level
// down to a 50ms floor.
func DefaultCurve() Curve {
	return Curve{
		Base:  1000 * time.Millisecond,
		Decay: 0.9,
		Min:   50 * time.Millisecond,
	}
}

// Interval returns the drop interval for level. Levels below 1 are
// treated as level 1.
func (c Curve) Interval(level int) time.Duration {
	level = max(level, 1)
	baseMs := float64(c.Base) / float64(time.Millisecond)
	ms := math.Round(baseMs * math.Pow(c.Decay, float64(level-1)))
	return max(c.Min, time.Duration(ms)*time.Millisecond)
}
