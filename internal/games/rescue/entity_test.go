package rescue

import (
	"testing"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

var testBounds = config.MapConfig{Left: -1000, Right: 1000, Top: -1000, Bottom: 1000}

func newTestBody() *Body {
	return &Body{Box: core.NewBox(0, 0, 10, 10), Health: 10, MaxHealth: 10, Velocity: 5}
}

func TestMoveFree(t *testing.T) {
	b := newTestBody()
	b.Move(Moves{Up: true, Right: true}, nil, testBounds)

	if b.Box.X != 5 || b.Box.Y != -5 {
		t.Errorf("position = (%v, %v), expected (5, -5)", b.Box.X, b.Box.Y)
	}
	if b.Blocked().Active() {
		t.Error("free move should not record a block")
	}

	b.Move(Moves{Up: true, Down: true}, nil, testBounds)
	if b.Box.Y != -5 {
		t.Errorf("opposite directions should cancel, y = %v", b.Box.Y)
	}
}

func TestMoveBlocked(t *testing.T) {
	b := newTestBody()
	rock := &Rock{Box: core.NewBox(0, -12, 10, 10)}

	b.Move(Moves{Up: true}, []*Rock{rock}, testBounds)

	if b.Box.X != 0 || b.Box.Y != 0 {
		t.Errorf("blocked move should be undone, at (%v, %v)", b.Box.X, b.Box.Y)
	}
	blocked := b.Blocked()
	if blocked.Rock != rock || blocked.Dir != DirUp {
		t.Errorf("blocked = %+v, expected rock above going up", blocked)
	}

	// The block is re-evaluated on every move.
	b.Move(Moves{Down: true}, []*Rock{rock}, testBounds)
	if b.Blocked().Active() {
		t.Error("block should clear after an unobstructed move")
	}
}

// When two axes collide in one move only the last evaluated one is kept.
func TestMoveBlockedLastAxisWins(t *testing.T) {
	b := newTestBody()
	above := &Rock{Box: core.NewBox(0, -12, 10, 10)}
	right := &Rock{Box: core.NewBox(12, 0, 10, 10)}

	b.Move(Moves{Up: true, Right: true}, []*Rock{above, right}, testBounds)

	blocked := b.Blocked()
	if blocked.Rock != right || blocked.Dir != DirRight {
		t.Errorf("blocked = %v by %p, expected right by %p", blocked.Dir, blocked.Rock, right)
	}
	if b.Box.X != 0 || b.Box.Y != 0 {
		t.Errorf("position = (%v, %v), expected (0, 0)", b.Box.X, b.Box.Y)
	}
}

func TestMoveClampsToBorder(t *testing.T) {
	b := newTestBody()
	b.Box.X = testBounds.Left + 2

	b.Move(Moves{Left: true}, nil, testBounds)
	if b.Box.X != testBounds.Left {
		t.Errorf("x = %v, expected border %v", b.Box.X, testBounds.Left)
	}
}

func TestSetBlockedRejectsInvalidDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid direction")
		}
	}()
	b := newTestBody()
	b.setBlocked(&Rock{}, DirNone)
}

func TestHealCapsAtMax(t *testing.T) {
	b := &Body{Health: 190, MaxHealth: 200}
	b.Heal(20)
	if b.Health != 200 {
		t.Errorf("health = %d, expected 200", b.Health)
	}
}

func TestDead(t *testing.T) {
	b := &Body{Health: 5, MaxHealth: 10}
	b.TakeDamage(5)
	if !b.Dead() {
		t.Error("body at 0 health should be dead")
	}
}
