package tetris

import (
	"errors"
	"fmt"
)

// ErrNotPlaying is returned when a piece operation is invoked after the
// game has ended. It signals a caller bug, not a game condition: illegal
// moves during play are silently ignored instead.
var ErrNotPlaying = errors.New("tetris: game is not in play")

// PhaseError describes an operation invoked in the wrong phase.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("tetris: %s called while %s", e.Op, e.Phase)
}

// Unwrap lets errors.Is match ErrNotPlaying.
func (e *PhaseError) Unwrap() error {
	return ErrNotPlaying
}
