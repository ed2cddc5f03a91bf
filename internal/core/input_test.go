package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("zero frame should not have ActionFire")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)

	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetPointer(120, 45)

	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should drop actions")
	}
	if !f.HasPointer || f.PointerX != 120 || f.PointerY != 45 {
		t.Errorf("Clear should keep pointer, got (%v, %v, %v)", f.PointerX, f.PointerY, f.HasPointer)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionFire, "Fire"},
		{ActionFireRelease, "FireRelease"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
