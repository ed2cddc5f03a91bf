package rescue

import (
	"fmt"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Tier indexes the configured enemy stat presets, weakest first.
type Tier int

// String returns the 1-based tier label.
func (t Tier) String() string {
	return fmt.Sprintf("T%d", int(t)+1)
}

// Enemy is a vampire chasing the player.
//
// Each frame an enemy is in one of three states: on cooldown after hitting
// the player (it stands still), blocked by a rock (it routes around it) or
// seeking (it moves straight at the player and bites on contact).
type Enemy struct {
	Body

	Tier Tier
	Name string

	sinceHit       int // Frames since the enemy last damaged the player
	cooldownFrames int
}

func newEnemy(tier Tier, tc config.TierConfig, size config.Size, x, y float64, tickRate, cooldownFrames int) *Enemy {
	return &Enemy{
		Body: Body{
			Box:          core.NewBox(x, y, size.W, size.H),
			Health:       tc.MaxHealth,
			MaxHealth:    tc.MaxHealth,
			Velocity:     tc.SpeedPerSecond / float64(tickRate),
			AttackDamage: tc.AttackDamage,
		},
		Tier:           tier,
		Name:           tc.Name,
		sinceHit:       cooldownFrames,
		cooldownFrames: cooldownFrames,
	}
}

// OnCooldown reports whether the enemy is still recovering from its last bite.
func (e *Enemy) OnCooldown() bool {
	return e.sinceHit < e.cooldownFrames
}

// Update runs one frame of the enemy against the player.
func (e *Enemy) Update(p *Player, rocks []*Rock, bounds config.MapConfig) {
	switch {
	case e.OnCooldown():
	case e.blocked.Active():
		e.Move(e.route(p), rocks, bounds)
	default:
		e.Move(e.seek(p), rocks, bounds)
		if Collides(e.Box, p.Box) {
			p.TakeDamage(e.AttackDamage)
			e.sinceHit = 0
		}
	}
	e.sinceHit++
}

// seek picks the directions straight towards the player. Offsets smaller
// than one step are ignored so the enemy does not jitter around the target.
func (e *Enemy) seek(p *Player) Moves {
	v := e.Velocity
	return Moves{
		Up:    p.Box.Y < e.Box.Y-v,
		Down:  p.Box.Y > e.Box.Y+v,
		Left:  p.Box.X < e.Box.X-v,
		Right: p.Box.X > e.Box.X+v,
	}
}
