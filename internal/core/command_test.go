package core

import "testing"

func TestCommandRoundTrip(t *testing.T) {
	for _, c := range Commands {
		parsed, ok := ParseCommand(c.String())
		if !ok {
			t.Errorf("ParseCommand(%q) failed", c.String())
			continue
		}
		if parsed != c {
			t.Errorf("ParseCommand(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}

	if _, ok := ParseCommand("teleport"); ok {
		t.Error("unknown command name should not parse")
	}
	if _, ok := ParseCommand("none"); ok {
		t.Error("none is not bindable")
	}
}

func TestIsPieceControl(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected bool
	}{
		{CommandMoveLeft, true},
		{CommandHardDrop, true},
		{CommandHold, true},
		{CommandPause, false},
		{CommandNewGame, false},
		{CommandQuit, false},
		{CommandNone, false},
	}

	for _, tc := range tests {
		if got := tc.cmd.IsPieceControl(); got != tc.expected {
			t.Errorf("%v.IsPieceControl() = %v, expected %v", tc.cmd, got, tc.expected)
		}
	}
}
