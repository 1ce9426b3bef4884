package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a turns left", runeKey("a"), core.ActionTurnLeft, false},
		{"left arrow turns left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{"d turns right", runeKey("d"), core.ActionTurnRight, false},
		{"right arrow turns right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTurnRight, false},
		{"w thrusts", runeKey("w"), core.ActionThrust, false},
		{"up thrusts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameCountsFire(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for range 3 {
		km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	}
	if got := frame.Count(core.ActionFire); got != 3 {
		t.Errorf("Expected 3 fire presses, got %d", got)
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("Expected q to report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit should not be recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
