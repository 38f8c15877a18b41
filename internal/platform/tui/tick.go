// Package tui provides the Bubble Tea front-end: key decoding, the game
// view, the start menu and the scoreboard. Bubble Tea's tick messages set
// the frame cadence; gravity timing stays inside the game loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game loop frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
