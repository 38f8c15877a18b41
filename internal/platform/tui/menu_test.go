package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuStep(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 0)
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("initial difficulty = %s", m.Difficulty())
	}

	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("right = %s, want hard", m.Difficulty())
	}

	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left past easy = %s, want fixed", m.Difficulty())
	}
}

func TestMenuDifficultyOnlyOnPlay(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy, 0)

	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty changed off the Play entry: %s", m.Difficulty())
	}
}

func TestMenuUnknownPresetFallsBackToNormal(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 0)
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("difficulty = %s, want normal", m.Difficulty())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuChoicePlay},
		{"scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuChoiceScoreboard},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuChoiceScoreboard},
		{"quit entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuChoiceQuit},
		{"q", []tea.KeyMsg{runeKey("q")}, MenuChoiceQuit},
		{"esc", []tea.KeyMsg{{Type: tea.KeyEsc}}, MenuChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 0)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = menuStep(t, m, k)
			}
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", m.Choice(), tt.want)
			}
			if !isQuit(cmd) {
				t.Error("a choice should close the menu")
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard, 12345)
	out := m.View()

	for _, want := range []string{"T E T R I S", "High score: 12345", "Play  < hard >", "High Scores", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu is missing %q:\n%s", want, out)
		}
	}
}

func TestScoreboardShowsGames(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveGame(storage.GameRecord{Score: 2400, Lines: 14, Level: 2, Difficulty: "hard"})
	store.SaveGame(storage.GameRecord{Score: 100, Lines: 1, Level: 1})

	m := NewScoreboardModel(store, 100, 30)
	out := m.View()
	for _, want := range []string{"HIGH SCORES", "2400", "hard", "2 games", "best level 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard is missing %q:\n%s", want, out)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("expected the empty notice:\n%s", m.View())
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := next.(ScoreboardModel)
	if !sb.IsGoingBack() || !isQuit(cmd) {
		t.Error("esc should go back to the menu")
	}

	next, cmd = m.Update(runeKey("q"))
	sb = next.(ScoreboardModel)
	if !sb.IsQuitting() || sb.IsGoingBack() || !isQuit(cmd) {
		t.Error("q should quit")
	}
}
