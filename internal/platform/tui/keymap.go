package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// DefaultHoldTicks is how many ticks a direction stays held after its last
// key press or repeat. Terminals report no key releases, so held movement
// decays instead.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ": // Space fires toward the pointer
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MouseEvent is what a mouse message means for the game.
type MouseEvent struct {
	Press, Release bool
	X, Y           int // Terminal cell
}

// MapMouse translates a mouse message. Only the left button fires; every
// event carries the pointer cell.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) MouseEvent {
	ev := MouseEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Press = msg.Button == tea.MouseButtonLeft
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		ev.Release = msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone
	}
	return ev
}

// cellCenter converts a terminal cell to viewport pixels at the cell centre.
func cellCenter(x, y int, cellW, cellH float64) (float64, float64) {
	return (float64(x) + 0.5) * cellW, (float64(y) + 0.5) * cellH
}

// isDirection reports whether an action is a held movement direction.
func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// opposite returns the direction opposite to a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// heldKeys tracks directions that count as held for a few ticks after
// their last key event.
type heldKeys struct {
	remaining map[core.Action]int
	holdTicks int
}

func newHeldKeys(holdTicks int) heldKeys {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return heldKeys{remaining: make(map[core.Action]int), holdTicks: holdTicks}
}

// press holds a direction and releases its opposite.
func (h heldKeys) press(a core.Action) {
	h.remaining[a] = h.holdTicks
	delete(h.remaining, opposite(a))
}

// apply marks every held direction in the frame and ages the holds.
func (h heldKeys) apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// clear releases every direction.
func (h heldKeys) clear() {
	clear(h.remaining)
}
