package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout: the well is drawn two columns per cell inside a double border,
// with the side panel to its right.
const (
	cellWidth  = 2
	wellW      = tetris.Width*cellWidth + 2
	wellH      = tetris.Height + 2
	panelGap   = 2
	panelW     = 26
	LayoutW    = wellW + panelGap + panelW
	LayoutH    = wellH
	previewPad = 4
)

var (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"

	frameStyle = core.Cell{Color: core.ColorWhite, Bold: true}
	emptyStyle = core.Cell{Color: core.ColorGray, Faint: true}
	labelStyle = core.Cell{Color: core.ColorDefault}
	valueStyle = core.Cell{Color: core.ColorBrightYellow}
	dimStyle   = core.Cell{Color: core.ColorGray, Faint: true}
	alertStyle = core.Cell{Color: core.ColorBrightRed, Bold: true}
)

var gameOverArt = []string{
	" GGG   AAA  M   M EEEE",
	"G     A   A MM MM E   ",
	"G  GG AAAAA M M M EEEE",
	"G   G A   A M   M E   ",
	" GGG  A   A M   M EEEE",
	"",
	" OOO  V   V EEEE RRRR ",
	"O   O V   V E    R   R",
	"O   O V   V EEEE RRRR ",
	"O   O  V V  E    R R  ",
	" OOO    V   EEEE R  RR",
}

// DrawGame renders a snapshot centered on s. keys supplies the key names
// shown in the panel. A screen smaller than the layout gets a notice
// instead.
func DrawGame(s *core.Screen, snap tetris.Snapshot, keys *KeyMapper) {
	s.Clear()
	area := core.NewRect(0, 0, s.Width(), s.Height())

	if s.Width() < LayoutW || s.Height() < LayoutH {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", LayoutW, LayoutH)
		s.DrawTextCentered(area, s.Height()/2, msg, alertStyle)
		return
	}

	layout := area.Centered(LayoutW, LayoutH)
	well := core.NewRect(layout.X, layout.Y, wellW, wellH)
	panel := core.NewRect(well.Right()+panelGap, layout.Y, panelW, wellH)

	s.DrawBox(well, frameStyle)
	s.DrawBox(panel, frameStyle)
	drawWell(s, well, snap)

	if snap.Phase == tetris.PhaseGameOver {
		drawGameOverArt(s, well)
		drawGameOverPanel(s, panel, snap, keys)
		return
	}
	drawPanel(s, panel, snap, keys)
}

// drawWell paints locked cells, the ghost and the active piece. The active
// piece wins over the ghost where they overlap.
func drawWell(s *core.Screen, well core.Rect, snap tetris.Snapshot) {
	put := func(x, y int, glyph string, style core.Cell) {
		s.DrawStyled(well.X+1+x*cellWidth, well.Y+1+y, glyph, style)
	}

	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			if c := snap.Board[y][x]; c != core.ColorDefault {
				put(x, y, blockGlyph, core.Cell{Color: c})
			} else {
				put(x, y, emptyGlyph, emptyStyle)
			}
		}
	}

	if snap.Phase != tetris.PhasePlaying {
		return
	}

	color := snap.Piece.Kind.Color()
	for _, c := range snap.GhostCells() {
		if inWell(c) && snap.Board[c.Y][c.X] == core.ColorDefault {
			put(c.X, c.Y, ghostGlyph, core.Cell{Color: color, Faint: true})
		}
	}
	for _, c := range snap.ActiveCells() {
		if inWell(c) {
			put(c.X, c.Y, blockGlyph, core.Cell{Color: color, Bold: true})
		}
	}
}

func inWell(c tetris.Cell) bool {
	return c.X >= 0 && c.X < tetris.Width && c.Y >= 0 && c.Y < tetris.Height
}

// drawPreview draws a kind in spawn orientation with its box origin at (x, y).
func drawPreview(s *core.Screen, x, y int, k tetris.Kind, faint bool) {
	style := core.Cell{Color: k.Color(), Faint: faint}
	for _, c := range k.Shape() {
		s.DrawStyled(x+c.X*cellWidth, y+c.Y, blockGlyph, style)
	}
}

func drawStat(s *core.Screen, x, y int, label string, value int, ls core.Cell) {
	s.DrawStyled(x, y, label, ls)
	s.DrawStyled(x+len(label), y, fmt.Sprint(value), valueStyle)
}

func drawPanel(s *core.Screen, panel core.Rect, snap tetris.Snapshot, keys *KeyMapper) {
	x := panel.X + 2
	y := panel.Y + 1

	s.DrawStyled(x, y, "NEXT", core.Cell{Color: core.ColorBrightCyan, Bold: true})
	for i, k := range snap.Next {
		drawPreview(s, x+previewPad, y+2+i*3, k, false)
	}

	holdY := y + 11
	holdTitle := "HOLD"
	if l := keys.Label(core.CommandHold); l != "" {
		holdTitle = fmt.Sprintf("HOLD (%s)", l)
	}
	s.DrawStyled(x, holdY, holdTitle, core.Cell{Color: core.ColorMagenta, Bold: true})
	if snap.HasHold {
		drawPreview(s, x+previewPad, holdY+1, snap.Hold, snap.HoldLocked)
	} else {
		s.DrawStyled(x+previewPad, holdY+1, "Empty", dimStyle)
	}

	statsY := y + 15
	drawStat(s, x, statsY, "SCORE: ", snap.Score, labelStyle)
	drawStat(s, x, statsY+1, "HIGH:  ", snap.HighScore, dimStyle)
	drawStat(s, x, statsY+2, "LEVEL: ", snap.Level, labelStyle)
	drawStat(s, x, statsY+3, "LINES: ", snap.Lines, labelStyle)

	if snap.Paused {
		label := " PAUSED "
		if l := keys.Label(core.CommandPause); l != "" {
			label = fmt.Sprintf(" PAUSED (%s) ", l)
		}
		s.DrawStyled(x, statsY+4, label, alertStyle)
	}
}

// drawGameOverArt stretches the banner across the well, border included.
func drawGameOverArt(s *core.Screen, well core.Rect) {
	top := well.Y + 1 + (tetris.Height-len(gameOverArt))/2
	for i, line := range gameOverArt {
		y := top + i
		for x := well.X; x < well.Right(); x++ {
			s.SetCell(x, y, core.Cell{Rune: ' '})
		}
		s.DrawTextCentered(well, y, line, alertStyle)
	}
}

func drawGameOverPanel(s *core.Screen, panel core.Rect, snap tetris.Snapshot, keys *KeyMapper) {
	x := panel.X + 2
	y := panel.Y + 1 + tetris.Height/2 - 4

	s.DrawStyled(x, y, "GAME OVER", alertStyle)
	drawStat(s, x, y+2, "Final: ", snap.Score, labelStyle)
	drawStat(s, x, y+3, "High : ", snap.HighScore, labelStyle)
	s.DrawStyled(x, y+5, fmt.Sprintf("%s: Retry", keys.Label(core.CommandNewGame)), labelStyle)
	s.DrawStyled(x, y+6, fmt.Sprintf("%s: Quit", keys.Label(core.CommandQuit)), labelStyle)
}
