package core

// Command is a single decoded player intent. The platform layer turns key
// presses into commands; the engine never sees key codes.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotate
	CommandHold
	CommandPause
	CommandNewGame
	CommandQuit
)

// Commands lists every bindable command in display order.
var Commands = []Command{
	CommandMoveLeft,
	CommandMoveRight,
	CommandSoftDrop,
	CommandHardDrop,
	CommandRotate,
	CommandHold,
	CommandPause,
	CommandNewGame,
	CommandQuit,
}

// String returns the config name of the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandSoftDrop:
		return "soft_drop"
	case CommandHardDrop:
		return "hard_drop"
	case CommandRotate:
		return "rotate"
	case CommandHold:
		return "hold"
	case CommandPause:
		return "pause"
	case CommandNewGame:
		return "new_game"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseCommand is the inverse of Command.String.
// Returns CommandNone and false for unknown names.
func ParseCommand(name string) (Command, bool) {
	for _, c := range Commands {
		if c.String() == name {
			return c, true
		}
	}
	return CommandNone, false
}

// IsPieceControl reports whether the command manipulates the falling piece.
// These are only meaningful while a game is being played.
func (c Command) IsPieceControl() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandSoftDrop,
		CommandHardDrop, CommandRotate, CommandHold:
		return true
	}
	return false
}
