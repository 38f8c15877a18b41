package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/loop"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// maxPending bounds the commands queued between frames. The loop applies
// one per frame; extra key repeats beyond this are dropped.
const maxPending = 4

// ModelOptions wires one play session.
type ModelOptions struct {
	Config    core.RuntimeConfig
	Keys      *KeyMapper
	Curve     loop.Curve
	Scores    loop.ScoreSink // optional
	HighScore int
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a game session. Key presses are
// decoded into commands and queued; every TickMsg runs one loop frame with
// at most one of them.
type Model struct {
	loop     *loop.Loop
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	pending  []core.Command
	quitting bool
	logger   *log.Logger
}

// NewModel creates a game session.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = loop.DefaultFrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := opts.Keys
	if keys == nil {
		// The built-in table always resolves.
		table, _ := config.DefaultTetrisConfig().Bindings()
		keys = NewKeyMapper(table)
	}

	game := tetris.New(cfg.Seed, opts.HighScore)
	lp := loop.New(game, loop.Options{
		Curve:     opts.Curve,
		FrameRate: cfg.TickRate,
		Scores:    opts.Scores,
		Logger:    logger,
	})
	logger.Info("session started", "seed", cfg.Seed, "fps", cfg.TickRate, "high", opts.HighScore)

	m := Model{
		loop:   lp,
		keys:   keys,
		help:   help.New(),
		config: cfg,
		logger: logger,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight())
		return m, nil
	}

	cmd := m.keys.MapKey(msg)
	switch {
	case cmd == core.CommandNone:
	case cmd == core.CommandQuit:
		m.quitting = true
		m.loop.Finish()
		m.logger.Info("session ended", "score", m.loop.Snapshot().Score)
		return m, tea.Quit
	case len(m.pending) < maxPending:
		m.pending = append(m.pending, cmd)
	}
	return m, nil
}

// handleTick runs one loop frame with the oldest queued command.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmd := core.CommandNone
	if len(m.pending) > 0 {
		cmd = m.pending[0]
		m.pending = m.pending[1:]
	}

	if m.loop.Frame(cmd) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// helpHeight is the number of rows the help bar occupies.
func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return 3
	}
	return 1
}

func (m Model) boardHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawGame(m.screen, m.loop.Snapshot(), m.keys)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tetris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Snapshot returns the state shown by the latest frame.
func (m Model) Snapshot() tetris.Snapshot {
	return m.loop.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.loop.Snapshot(), m.keys)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, helpStyle.Render(m.help.View(m.keys)))
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for one session and returns the final
// snapshot.
func Run(opts ModelOptions) (tetris.Snapshot, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.Snapshot(), err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Snapshot(), nil
	}
	return model.Snapshot(), nil
}
