package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/loop"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type countingSink struct{ scores []int }

func (s *countingSink) RecordGame(score, _, _ int) error {
	s.scores = append(s.scores, score)
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(ModelOptions{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7},
		Keys:   defaultKeys(t),
		Curve:  loop.DefaultCurve(),
	})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeyAppliesOnTick(t *testing.T) {
	m := newTestModel(t)
	x := m.Snapshot().Piece.X

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Snapshot().Piece.X; got != x {
		t.Fatalf("move applied before the frame: X = %d, want %d", got, x)
	}

	m, cmd := step(t, m, TickMsg{})
	if got := m.Snapshot().Piece.X; got != x-1 {
		t.Errorf("after frame X = %d, want %d", got, x-1)
	}
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
}

func TestModelOneCommandPerFrame(t *testing.T) {
	m := newTestModel(t)
	x := m.Snapshot().Piece.X

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = step(t, m, TickMsg{})
	if got := m.Snapshot().Piece.X; got != x+1 {
		t.Errorf("after first frame X = %d, want %d", got, x+1)
	}
	m, _ = step(t, m, TickMsg{})
	if got := m.Snapshot().Piece.X; got != x+2 {
		t.Errorf("after second frame X = %d, want %d", got, x+2)
	}
}

func TestModelPendingIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxPending+3; i++ {
		m, _ = step(t, m, runeKey("a"))
	}
	if len(m.pending) != maxPending {
		t.Errorf("pending = %d, want %d", len(m.pending), maxPending)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)

	m, _ = step(t, m, runeKey("p"))
	m, _ = step(t, m, TickMsg{})
	if !m.Snapshot().Paused {
		t.Fatal("expected paused snapshot")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause banner")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, TickMsg{})
	if m.Snapshot().Paused {
		t.Error("esc should resume")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := step(t, m, runeKey("q"))
	if !isQuit(cmd) {
		t.Fatal("q should quit immediately")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitRecordsRunningGame(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp},
		{Type: tea.KeySpace, Runes: []rune{' '}},
	}
	for seed := int64(1); seed <= 2000; seed++ {
		sink := &countingSink{}
		m := NewModel(ModelOptions{
			Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed},
			Keys:   defaultKeys(t),
			Curve:  loop.DefaultCurve(),
			Scores: sink,
		})
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < 5000 && m.Snapshot().Phase == tetris.PhasePlaying; i++ {
			m, _ = step(t, m, keys[rng.Intn(len(keys))])
			m, _ = step(t, m, TickMsg{})
			if m.Snapshot().Score == 0 || m.Snapshot().Phase != tetris.PhasePlaying {
				continue
			}

			score := m.Snapshot().Score
			var cmd tea.Cmd
			m, cmd = step(t, m, runeKey("q"))
			if !isQuit(cmd) {
				t.Fatal("q should quit")
			}
			if len(sink.scores) != 1 || sink.scores[0] != score {
				t.Errorf("recorded %v, want [%d]", sink.scores, score)
			}
			m.loop.Finish()
			if len(sink.scores) != 1 {
				t.Errorf("quit recorded the game %d times", len(sink.scores))
			}
			return
		}
	}
	t.Fatal("no seed produced a scoring game")
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	h := m.screen.Height()

	m, _ = step(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if got := m.screen.Height(); got != h-2 {
		t.Errorf("board height = %d, want %d", got, h-2)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	for _, want := range []string{"NEXT", "SCORE", "rotate", "hard drop"} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestModelDefaults(t *testing.T) {
	m := NewModel(ModelOptions{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 30},
	})
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if m.config.TickRate != loop.DefaultFrameRate {
		t.Errorf("TickRate = %d, want %d", m.config.TickRate, loop.DefaultFrameRate)
	}
	if m.keys.MapKey(tea.KeyMsg{Type: tea.KeyLeft}) != core.CommandMoveLeft {
		t.Error("missing keys should fall back to the default bindings")
	}
}
