package rescue

import "github.com/vovakirdan/vampire-rescue/internal/core"

// Controls is the input state the simulation reads during one frame.
// Held directions and the pointer come from the current frame; the trigger
// latch carries over between frames.
type Controls struct {
	Held               Moves
	PointerX, PointerY float64 // Viewport pixels

	click          bool // A shot is pending
	unclicked      bool // The trigger was released since the last shot
	releasePending bool // Release arrived together with its press
}

// NewControls returns controls with the trigger released.
func NewControls() Controls {
	return Controls{unclicked: true}
}

// Sample reads one input frame. A press latches a shot only if the trigger
// was released since the last shot; a release drops the latch. When press
// and release arrive in the same frame the shot is still fired and the
// release is applied by EndFrame.
func (c *Controls) Sample(in core.InputFrame) {
	c.Held = Moves{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
	if in.HasPointer {
		c.PointerX, c.PointerY = in.PointerX, in.PointerY
	}

	pressed := in.Has(core.ActionFire)
	if pressed && c.unclicked {
		c.click = true
	}
	if in.Has(core.ActionFireRelease) {
		if pressed {
			c.releasePending = true
		} else {
			c.release()
		}
	}
}

// Trigger reports whether a shot should be fired this frame.
func (c *Controls) Trigger() bool {
	return c.click
}

// Fired consumes the latch after a shot. With quick shoot the latch stays
// set until the trigger is released.
func (c *Controls) Fired(quickShoot bool) {
	if !quickShoot {
		c.click = false
	}
	c.unclicked = false
}

// EndFrame applies a release that arrived with its press.
func (c *Controls) EndFrame() {
	if c.releasePending {
		c.releasePending = false
		c.release()
	}
}

// ResetTrigger drops a pending shot, e.g. when a menu opens.
func (c *Controls) ResetTrigger() {
	c.click = false
}

func (c *Controls) release() {
	c.click = false
	c.unclicked = true
}
