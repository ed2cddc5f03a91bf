package rescue

import (
	"testing"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestControlsSample(t *testing.T) {
	c := NewControls()
	in := frameWith(core.ActionUp, core.ActionLeft)
	in.SetPointer(120, 80)

	c.Sample(in)
	if !c.Held.Up || !c.Held.Left || c.Held.Down || c.Held.Right {
		t.Errorf("held = %+v, expected up and left", c.Held)
	}
	if c.PointerX != 120 || c.PointerY != 80 {
		t.Errorf("pointer = (%v, %v)", c.PointerX, c.PointerY)
	}

	c.Sample(core.NewInputFrame())
	if c.Held.Any() {
		t.Error("held directions should come from the current frame only")
	}
	if c.PointerX != 120 {
		t.Error("pointer should persist when the frame has none")
	}
}

func TestControlsTriggerLatch(t *testing.T) {
	c := NewControls()

	c.Sample(frameWith(core.ActionFire))
	if !c.Trigger() {
		t.Fatal("press should latch a shot")
	}
	c.Fired(false)
	c.EndFrame()

	// Pressing again without a release does nothing.
	c.Sample(frameWith(core.ActionFire))
	if c.Trigger() {
		t.Error("a second press without release should not fire")
	}
	c.EndFrame()

	c.Sample(frameWith(core.ActionFireRelease))
	c.EndFrame()
	c.Sample(frameWith(core.ActionFire))
	if !c.Trigger() {
		t.Error("press after release should fire again")
	}
}

func TestControlsQuickShootHoldsLatch(t *testing.T) {
	c := NewControls()

	c.Sample(frameWith(core.ActionFire))
	for i := range 3 {
		if !c.Trigger() {
			t.Fatalf("frame %d: quick shoot should keep firing while held", i)
		}
		c.Fired(true)
		c.EndFrame()
		c.Sample(core.NewInputFrame())
	}

	c.Sample(frameWith(core.ActionFireRelease))
	if c.Trigger() {
		t.Error("release should stop quick shoot")
	}
}

func TestControlsTapInOneFrame(t *testing.T) {
	c := NewControls()

	c.Sample(frameWith(core.ActionFire, core.ActionFireRelease))
	if !c.Trigger() {
		t.Fatal("a tap within one frame should still fire")
	}
	c.Fired(true)
	c.EndFrame()

	if c.Trigger() {
		t.Error("the tap's release should end the latch after the frame")
	}

	c.Sample(frameWith(core.ActionFire))
	if !c.Trigger() {
		t.Error("the next press should fire")
	}
}

func TestControlsResetTrigger(t *testing.T) {
	c := NewControls()
	c.Sample(frameWith(core.ActionFire))
	c.ResetTrigger()
	if c.Trigger() {
		t.Error("ResetTrigger should drop the pending shot")
	}
}
