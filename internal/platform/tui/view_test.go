package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// wellRune returns the first rune of board cell (x, y) on a screen sized
// exactly to the layout.
func wellRune(s *core.Screen, x, y int) rune {
	return s.Get(1+x*cellWidth, 1+y)
}

func TestDrawGamePanel(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 4200).Snapshot()

	DrawGame(s, snap, defaultKeys(t))
	out := s.String()

	for _, want := range []string{"NEXT", "HOLD (c)", "Empty", "SCORE: 0", "HIGH:  4200", "LEVEL: 1", "LINES: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("PAUSED shown while running")
	}
}

func TestDrawGamePiecesAndGhost(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 0).Snapshot()

	DrawGame(s, snap, defaultKeys(t))

	active := map[tetris.Cell]bool{}
	for _, c := range snap.ActiveCells() {
		active[c] = true
		if r := wellRune(s, c.X, c.Y); r != '█' {
			t.Errorf("active cell %v drawn as %q", c, r)
		}
	}
	for _, c := range snap.GhostCells() {
		if active[c] {
			continue
		}
		if r := wellRune(s, c.X, c.Y); r != '░' {
			t.Errorf("ghost cell %v drawn as %q", c, r)
		}
	}
	// Mid-well rows are clear of both the spawn and the ghost.
	if r := s.Get(1+1, 1+tetris.Height/2); r != '·' {
		t.Errorf("empty cell drawn as %q", r)
	}
}

func TestDrawGameLockedCells(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 0).Snapshot()
	snap.Board[tetris.Height-1][0] = core.ColorRed

	DrawGame(s, snap, defaultKeys(t))

	if c := s.GetCell(1, tetris.Height); c.Rune != '█' || c.Color != core.ColorRed {
		t.Errorf("locked cell = %+v", c)
	}
}

func TestDrawGamePaused(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 0).Snapshot()
	snap.Paused = true

	DrawGame(s, snap, defaultKeys(t))

	if !strings.Contains(s.String(), "PAUSED (p)") {
		t.Errorf("pause banner missing:\n%s", s.String())
	}
}

func TestDrawGameHold(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 0).Snapshot()
	snap.Hold = tetris.O
	snap.HasHold = true
	snap.HoldLocked = true

	DrawGame(s, snap, defaultKeys(t))

	if strings.Contains(s.String(), "Empty") {
		t.Error("hold box still says Empty")
	}
	holdY := 1 + 11 + 1 // panel top, title offset, preview row
	found := false
	for x := wellW + panelGap; x < LayoutW; x++ {
		if c := s.GetCell(x, holdY); c.Rune == '█' {
			found = true
			if !c.Faint {
				t.Error("locked hold should be drawn faint")
			}
		}
	}
	if !found {
		t.Errorf("held piece not drawn on row %d:\n%s", holdY, s.String())
	}
}

func TestDrawGameOver(t *testing.T) {
	s := core.NewScreen(LayoutW, LayoutH)
	snap := tetris.New(1, 0).Snapshot()
	snap.Phase = tetris.PhaseGameOver
	snap.Score = 1300
	snap.HighScore = 5000

	DrawGame(s, snap, defaultKeys(t))
	out := s.String()

	for _, want := range []string{"GAME OVER", "Final: 1300", "High : 5000", "r: Retry", "q: Quit", "GGG"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "NEXT") {
		t.Error("running panel drawn after game over")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	s := core.NewScreen(30, 10)

	DrawGame(s, tetris.New(1, 0).Snapshot(), defaultKeys(t))

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size notice:\n%s", s.String())
	}
}

func TestDrawGameCentersLayout(t *testing.T) {
	s := core.NewScreen(LayoutW+20, LayoutH+4)

	DrawGame(s, tetris.New(1, 0).Snapshot(), defaultKeys(t))

	if r := s.Get(10, 2); r != '╔' {
		t.Errorf("well corner = %q, want ╔", r)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawStyled(0, 0, "AB", core.Cell{Color: core.ColorRed})
	s.DrawStyled(2, 0, "CD", core.Cell{Color: core.ColorRed, Bold: true})
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	for _, want := range []string{"AB", "CD", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output is missing %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 rows, got %d newlines", got)
	}
}
