package rescue

import (
	"math"
	"slices"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// World owns every simulated entity of a session. Each entity lives in
// exactly one of its collections.
type World struct {
	cfg      config.RescueConfig
	tickRate int
	rng      *SimpleRNG

	Player      *Player
	Rocks       []*Rock
	Enemies     []*Enemy
	Projectiles []*Projectile
	PowerUps    []*PowerUp

	projectileSpeed float64 // Pixels per frame
	cooldownFrames  int
}

// FrameEvents counts what happened during one World.Step.
type FrameEvents struct {
	Shots       int // Projectiles fired
	Hits        int // Projectile hits on enemies
	Saved       int // Enemies defeated
	Bites       int // Contact hits on the player
	DamageTaken int
	PickedUp    []PowerUpKind
}

// NewWorld creates an empty world with the player at its start position.
// Call Reset to generate the map.
func NewWorld(cfg config.RescueConfig, tickRate int, seed int64) *World {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &World{
		cfg:             cfg,
		tickRate:        tickRate,
		rng:             NewSimpleRNG(seed),
		Player:          newPlayer(cfg, tickRate),
		projectileSpeed: cfg.Combat.ProjectileSpeedPerSecond / float64(tickRate),
		cooldownFrames:  cfg.Combat.InvincibilityMS * tickRate / 1000,
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RescueConfig {
	return w.cfg
}

// Reset restores the player's starting stats, drops live projectiles and
// generates a new map. The RNG keeps its state, so consecutive runs differ
// but replay identically for the same seed.
func (w *World) Reset() {
	w.Player.reset(w.cfg, w.tickRate)
	w.Projectiles = nil
	w.Generate()
}

// Generate places rocks, enemies and power-ups.
func (w *World) Generate() {
	gen := w.cfg.Generation

	n := w.rng.Between(gen.Rocks.Min, gen.Rocks.Max)
	w.Rocks = make([]*Rock, 0, n)
	for range n {
		w.Rocks = append(w.Rocks, &Rock{Box: w.place(w.cfg.Sprites.Rock)})
	}

	n = w.rng.Between(gen.Enemies.Min, gen.Enemies.Max)
	w.Enemies = make([]*Enemy, 0, n)
	for i := range n {
		tier := w.tierFor(i, n)
		size := w.cfg.Sprites.Enemies[tier]
		box := w.place(size)
		w.Enemies = append(w.Enemies, newEnemy(tier, w.cfg.Tiers[tier], size, box.X, box.Y, w.tickRate, w.cooldownFrames))
	}

	n = w.rng.Between(gen.PowerUps.Min, gen.PowerUps.Max)
	w.PowerUps = make([]*PowerUp, 0, n)
	for i := range n {
		pu := &PowerUp{Box: w.place(w.cfg.Sprites.PowerUp)}
		switch {
		case i == 0:
			pu.Kind = PowerUpQuickShoot
		case float64(i) < float64(n)*w.cfg.PowerUps.AttackBoostShare:
			pu.Kind = PowerUpAttack
			pu.Amount = w.cfg.PowerUps.AttackBoost
		default:
			pu.Kind = PowerUpHealth
			pu.Amount = w.cfg.PowerUps.HealthRestore
		}
		w.PowerUps = append(w.PowerUps, pu)
	}
}

// tierFor assigns the i-th of n enemies to a tier. The strongest tiers take
// the first indices according to their cumulative shares; the weakest tier
// takes the rest. Rounding noise in the summed shares is ignored.
func (w *World) tierFor(i, n int) Tier {
	cum := 0.0
	for t := len(w.cfg.Tiers) - 1; t > 0; t-- {
		cum += w.cfg.Tiers[t].Share
		if float64(i) < math.Ceil(float64(n)*cum-1e-9) {
			return Tier(t)
		}
	}
	return 0
}

// randomBox returns a box of the given size at a uniformly random whole-pixel
// position inside the map.
func (w *World) randomBox(s config.Size) core.Box {
	m := w.cfg.Map
	x := math.Floor(w.rng.Float64()*(m.Right-s.W-m.Left)) + m.Left
	y := math.Floor(w.rng.Float64()*(m.Bottom-s.H-m.Top)) + m.Top
	return core.NewBox(x, y, s.W, s.H)
}

// place samples positions until one overlaps neither the player nor a rock.
// There is no attempt limit: a map without free space never returns.
func (w *World) place(s config.Size) core.Box {
	for {
		b := w.randomBox(s)
		if !Collides(b, w.Player.Box) && firstRock(b, w.Rocks) == nil {
			return b
		}
	}
}

// Step advances the world by one frame while playing. The camera follows
// the player and turns the pointer into an aiming target.
func (w *World) Step(c *Controls, cam *Camera) FrameEvents {
	var ev FrameEvents
	p := w.Player
	bounds := w.cfg.Map

	p.Update(c.Held, w.Rocks, bounds)
	cam.Follow(p.Box, bounds)

	for _, e := range w.Enemies {
		before := p.Health
		e.Update(p, w.Rocks, bounds)
		if p.Health < before {
			ev.Bites++
			ev.DamageTaken += before - p.Health
		}
	}

	w.resolveHits(&ev)
	w.advanceProjectiles()

	if c.Trigger() {
		tx, ty := cam.ToWorld(c.PointerX, c.PointerY)
		w.Fire(tx, ty)
		c.Fired(p.QuickShoot)
		ev.Shots++
	}

	w.collectPowerUps(&ev)
	return ev
}

// Fire spawns a projectile from the player's centre towards the target,
// carrying the player's current attack damage.
func (w *World) Fire(targetX, targetY float64) *Projectile {
	cx, cy := w.Player.Center()
	pr := NewProjectile(cx, cy, targetX, targetY, w.projectileSpeed, w.Player.AttackDamage,
		w.cfg.Combat.ProjectileWidth, w.cfg.Combat.ProjectileHeight)
	w.Projectiles = append(w.Projectiles, pr)
	return pr
}

// resolveHits lets every projectile hit at most one enemy, the first
// overlapping one in order. Enemies killed by a hit are removed at once.
func (w *World) resolveHits(ev *FrameEvents) {
	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		i := slices.IndexFunc(w.Enemies, func(e *Enemy) bool {
			return Collides(pr.Box, e.Box)
		})
		if i < 0 {
			kept = append(kept, pr)
			continue
		}

		e := w.Enemies[i]
		e.TakeDamage(pr.Damage)
		ev.Hits++
		if e.Dead() {
			w.Enemies = slices.Delete(w.Enemies, i, i+1)
			w.Player.Saved++
			ev.Saved++
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// advanceProjectiles moves every projectile and drops the ones that reached
// the border or a rock.
func (w *World) advanceProjectiles() {
	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.Advance()
		if outsideBorder(pr.Box, w.cfg.Map) || firstRock(pr.Box, w.Rocks) != nil {
			continue
		}
		kept = append(kept, pr)
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// collectPowerUps applies and removes every power-up the player touches.
func (w *World) collectPowerUps(ev *FrameEvents) {
	w.PowerUps = slices.DeleteFunc(w.PowerUps, func(pu *PowerUp) bool {
		if !Collides(pu.Box, w.Player.Box) {
			return false
		}
		pu.Apply(w.Player)
		ev.PickedUp = append(ev.PickedUp, pu.Kind)
		return true
	})
}

// Lost reports whether the player has died.
func (w *World) Lost() bool {
	return w.Player.Dead()
}

// Won reports whether every enemy has been defeated.
func (w *World) Won() bool {
	return len(w.Enemies) == 0
}
