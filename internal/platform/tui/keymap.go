package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// commandHelp is the help-bar description of each command.
var commandHelp = map[core.Command]string{
	core.CommandMoveLeft:  "left",
	core.CommandMoveRight: "right",
	core.CommandSoftDrop:  "soft drop",
	core.CommandHardDrop:  "hard drop",
	core.CommandRotate:    "rotate",
	core.CommandHold:      "hold",
	core.CommandPause:     "pause",
	core.CommandNewGame:   "new game",
	core.CommandQuit:      "quit",
}

// keyLabels shortens key names for the help bar and side panel.
var keyLabels = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
	" ":     "space",
}

func keyLabel(k string) string {
	if l, ok := keyLabels[k]; ok {
		return l
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to game commands.
// Bindings come from configuration; the mapper also serves as the help
// bar's key map.
type KeyMapper struct {
	bindings map[core.Command]key.Binding
}

// NewKeyMapper builds bindings from a command → keys table. Commands
// missing from the table are left unbound.
func NewKeyMapper(table map[core.Command][]string) *KeyMapper {
	km := &KeyMapper{bindings: make(map[core.Command]key.Binding, len(table))}
	for _, cmd := range core.Commands {
		keys := table[cmd]
		if len(keys) == 0 {
			continue
		}
		labels := make([]string, len(keys))
		for i, k := range keys {
			labels[i] = keyLabel(k)
		}
		km.bindings[cmd] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), commandHelp[cmd]),
		)
	}
	return km
}

// MapKey returns the command bound to msg, or CommandNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Command {
	for _, cmd := range core.Commands {
		if b, ok := km.bindings[cmd]; ok && key.Matches(msg, b) {
			return cmd
		}
	}
	return core.CommandNone
}

// Label returns the display name of the first key bound to cmd. A nil
// mapper has no labels.
func (km *KeyMapper) Label(cmd core.Command) string {
	if km == nil {
		return ""
	}
	b, ok := km.bindings[cmd]
	if !ok || len(b.Keys()) == 0 {
		return ""
	}
	return keyLabel(b.Keys()[0])
}

func (km *KeyMapper) binding(cmd core.Command) key.Binding {
	return km.bindings[cmd]
}

// ShortHelp returns key bindings for the short help view.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{
		km.binding(core.CommandRotate),
		km.binding(core.CommandHardDrop),
		km.binding(core.CommandHold),
		km.binding(core.CommandPause),
		km.binding(core.CommandQuit),
	}
}

// FullHelp returns key bindings for the full help view.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.binding(core.CommandMoveLeft), km.binding(core.CommandMoveRight), km.binding(core.CommandSoftDrop)},
		{km.binding(core.CommandRotate), km.binding(core.CommandHardDrop), km.binding(core.CommandHold)},
		{km.binding(core.CommandPause), km.binding(core.CommandNewGame), km.binding(core.CommandQuit)},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Menu keys are
// fixed and do not follow the game bindings.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
