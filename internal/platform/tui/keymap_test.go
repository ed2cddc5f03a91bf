package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%s, %v), expected (%s, %v)",
					tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected MouseEvent
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			MouseEvent{Press: true, X: 3, Y: 2},
		},
		{
			"right press does not fire",
			tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			MouseEvent{X: 1, Y: 1},
		},
		{
			"release without button",
			tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			MouseEvent{Release: true, X: 4, Y: 0},
		},
		{
			"motion",
			tea.MouseMsg{X: 9, Y: 5, Action: tea.MouseActionMotion},
			MouseEvent{X: 9, Y: 5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapMouse(tc.msg); got != tc.expected {
				t.Errorf("MapMouse() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	x, y := cellCenter(2, 1, CellWidth, CellHeight)
	if x != 40 || y != 48 {
		t.Errorf("cellCenter(2, 1) = (%v, %v), expected (40, 48)", x, y)
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := newHeldKeys(3)
	h.press(core.ActionRight)

	for tick := 1; tick <= 4; tick++ {
		frame := core.NewInputFrame()
		h.apply(&frame)
		if want := tick <= 3; frame.Has(core.ActionRight) != want {
			t.Errorf("tick %d: right held = %v, expected %v", tick, frame.Has(core.ActionRight), want)
		}
	}
}

func TestHeldKeysOpposite(t *testing.T) {
	h := newHeldKeys(0)
	if h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected default %d", h.holdTicks, DefaultHoldTicks)
	}

	h.press(core.ActionLeft)
	h.press(core.ActionUp)
	h.press(core.ActionRight)

	frame := core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Errorf("expected right and up held, got %v", frame.Actions)
	}

	h.clear()
	frame.Clear()
	h.apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("clear should release everything, got %v", frame.Actions)
	}
}
