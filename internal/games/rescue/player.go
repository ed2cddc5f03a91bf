package rescue

import (
	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Player is the single player-controlled entity.
type Player struct {
	Body

	MaxVelocity float64 // Pixels per frame
	Accel       float64 // Velocity gained per frame while a direction is held
	Heading     Moves   // Directions being travelled; kept while coasting
	Saved       int     // Enemies defeated this run
	QuickShoot  bool    // Trigger fires every frame while held
}

func newPlayer(cfg config.RescueConfig, tickRate int) *Player {
	p := &Player{}
	p.reset(cfg, tickRate)
	return p
}

// reset restores starting stats and position.
func (p *Player) reset(cfg config.RescueConfig, tickRate int) {
	fps := float64(tickRate)
	maxV := cfg.Player.MaxSpeedPerSecond / fps

	*p = Player{
		Body: Body{
			Box:          core.NewBox(cfg.Player.StartX, cfg.Player.StartY, cfg.Sprites.Player.W, cfg.Sprites.Player.H),
			Health:       cfg.Player.MaxHealth,
			MaxHealth:    cfg.Player.MaxHealth,
			AttackDamage: cfg.Player.AttackDamage,
		},
		MaxVelocity: maxV,
		Accel:       maxV / fps,
	}
}

// ApplyInertia updates velocity from the held directions. Holding any
// direction ramps velocity up to MaxVelocity; releasing all of them ramps
// it down twice as fast and clears the heading once the player stops.
func (p *Player) ApplyInertia(held Moves) {
	if held.Any() {
		p.Heading = held
		p.Velocity = min(p.Velocity+p.Accel, p.MaxVelocity)
		return
	}

	if p.Velocity-2*p.Accel > 0 {
		p.Velocity -= 2 * p.Accel
		return
	}
	p.Velocity = 0
	p.Heading = Moves{}
}

// Update applies inertia and moves the player along its heading.
func (p *Player) Update(held Moves, rocks []*Rock, bounds config.MapConfig) {
	p.ApplyInertia(held)
	p.Move(p.Heading, rocks, bounds)
}
