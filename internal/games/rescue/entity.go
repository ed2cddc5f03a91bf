package rescue

import (
	"fmt"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Direction is the axis direction of one movement attempt.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// Vertical reports whether the direction moves along the y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// Moves is a requested direction set. Each flag is tried on its own, so a
// diagonal is two axis moves and opposite flags cancel out.
type Moves struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is requested.
func (m Moves) Any() bool {
	return m.Up || m.Down || m.Left || m.Right
}

// Blocked is the obstacle that stopped a movement attempt and the direction
// of that attempt. The zero value means the last move was not blocked.
type Blocked struct {
	Rock *Rock
	Dir  Direction
}

// Active reports whether a block is recorded.
func (b Blocked) Active() bool {
	return b.Rock != nil
}

// Body is the positioned, sized and damageable state shared by the player
// and enemies.
type Body struct {
	Box          core.Box
	Health       int
	MaxHealth    int
	Velocity     float64 // Pixels per frame
	AttackDamage int

	blocked Blocked
}

// Blocked returns the block recorded by the last Move.
func (b *Body) Blocked() Blocked {
	return b.blocked
}

// setBlocked records a block. Only the four axis directions are accepted.
func (b *Body) setBlocked(r *Rock, d Direction) {
	if !d.valid() {
		panic(fmt.Sprintf("rescue: invalid blocked direction %d", d))
	}
	b.blocked = Blocked{Rock: r, Dir: d}
}

// Dead reports whether health has run out.
func (b *Body) Dead() bool {
	return b.Health <= 0
}

// TakeDamage subtracts n from health.
func (b *Body) TakeDamage(n int) {
	b.Health -= n
}

// Heal adds n to health, capped at MaxHealth.
func (b *Body) Heal(n int) {
	b.Health = min(b.Health+n, b.MaxHealth)
}

// Center returns the centre of the body.
func (b *Body) Center() (float64, float64) {
	return b.Box.Center()
}

// Move tries each requested direction by Velocity pixels in the order up,
// down, left, right. A step that ends inside a rock is undone and recorded
// as the block, overwriting any block from an earlier axis, so only the last
// blocked axis survives. The body is clamped to the map afterwards.
func (b *Body) Move(m Moves, rocks []*Rock, bounds config.MapConfig) {
	b.blocked = Blocked{}

	v := b.Velocity
	steps := [...]struct {
		on     bool
		dir    Direction
		dx, dy float64
	}{
		{m.Up, DirUp, 0, -v},
		{m.Down, DirDown, 0, v},
		{m.Left, DirLeft, -v, 0},
		{m.Right, DirRight, v, 0},
	}

	for _, s := range steps {
		if !s.on {
			continue
		}
		b.Box.X += s.dx
		b.Box.Y += s.dy
		if r := firstRock(b.Box, rocks); r != nil {
			b.Box.X -= s.dx
			b.Box.Y -= s.dy
			b.setBlocked(r, s.dir)
		}
	}

	ClampToBorder(&b.Box, bounds)
}
