package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
}{
	{MenuChoicePlay, "Play"},
	{MenuChoiceScoreboard, "High Scores"},
	{MenuChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu. Left and right on
// the Play entry cycle the difficulty preset.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	highScore  int
	width      int
	height     int
	config     core.RuntimeConfig
	choice     MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, highScore int) MenuModel {
	return MenuModel{
		difficulty: presetIndex(preset),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		highScore:  highScore,
	}
}

// presetIndex finds p in config.Presets. Unknown presets select normal.
func presetIndex(p config.DifficultyPreset) int {
	normal := 0
	for i, q := range config.Presets {
		if q == p {
			return i
		}
		if q == config.DifficultyNormal {
			normal = i
		}
	}
	return normal
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor].choice == MenuChoicePlay {
			m.difficulty = (m.difficulty + len(config.Presets) - 1) % len(config.Presets)
		}

	case MenuActionRight:
		if menuItems[m.cursor].choice == MenuChoicePlay {
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  T E T R I S  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(dimStyle, fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := item.title
		if item.choice == MenuChoicePlay {
			line = fmt.Sprintf("%s  < %s >", item.title, m.Difficulty())
			if config.IsFixedPreset(m.Difficulty()) {
				line += " no speed-up"
			}
		}
		if i == m.cursor {
			b.WriteString(centerStyled(cursorStyle, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the preset currently shown on the Play entry.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result. Closing the
// program without a choice counts as quitting.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, highScore int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, highScore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Difficulty: preset, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Difficulty: preset, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	if result.Choice == MenuChoiceNone {
		result.Choice = MenuChoiceQuit
	}
	return result, nil
}
