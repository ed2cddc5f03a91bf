package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - held: move up
	ActionDown                // S, Down arrow - held: move down
	ActionLeft                // A, Left arrow - held: move left
	ActionRight               // D, Right arrow - held: move right
	ActionFire                // Left click, Space - trigger pressed this tick
	ActionFireRelease         // Trigger released this tick
	ActionConfirm             // Enter - start the session from the title screen
	ActionRestart             // R - restart from pause, game over or win
	ActionQuit                // Q, Ctrl+C - exit
	ActionPause               // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionFireRelease:
		return "FireRelease"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Frontends collect events between ticks and hand the simulation one frame,
// which it treats as immutable for the whole tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered (or held) this frame.
	Actions map[Action]bool

	// PointerX and PointerY are the pointer position in viewport pixels.
	PointerX, PointerY float64
	// HasPointer is false until the frontend has seen a pointer position.
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer position in viewport pixels.
func (f *InputFrame) SetPointer(x, y float64) {
	f.PointerX = x
	f.PointerY = y
	f.HasPointer = true
}

// Clear resets all actions for the next frame. The pointer position is kept,
// since a pointer that did not move is still where it was.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
