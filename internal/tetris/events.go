package tetris

// EventType classifies an Event.
type EventType uint8

const (
	// EventLocked fires after every lock-and-resolve. Score is the value a
	// high-score keeper should compare against.
	EventLocked EventType = iota
	// EventLinesCleared fires when a lock removed rows.
	EventLinesCleared
	// EventLevelUp fires when the level increased.
	EventLevelUp
	// EventGameOver fires once when a spawn collides.
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something that happened during a game operation. Counters are
// the values after the operation completed.
type Event struct {
	Type    EventType
	Cleared int // rows removed (EventLinesCleared)
	Points  int // points awarded (EventLinesCleared)
	Score   int
	Lines   int
	Level   int
}
