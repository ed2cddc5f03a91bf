package rescue

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
type Snapshot struct {
	Tick  uint64
	State string

	PlayerX, PlayerY float64
	Velocity         float64
	Health           int
	AttackDamage     int
	Saved            int
	QuickShoot       bool

	RockCount       int
	EnemyCount      int
	ProjectileCount int
	PowerUpCount    int

	// EnemyData is tier, health, x, y and cooldown per enemy.
	EnemyData []float64
	// ProjectileData is x, y and heading per projectile.
	ProjectileData []float64
	// PowerUpData is kind, x and y per power-up.
	PowerUpData []float64
	// RockData is x and y per rock.
	RockData []float64

	RNGState uint64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := w.Player

	snap := Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:           g.state,
		PlayerX:         p.Box.X,
		PlayerY:         p.Box.Y,
		Velocity:        p.Velocity,
		Health:          p.Health,
		AttackDamage:    p.AttackDamage,
		Saved:           p.Saved,
		QuickShoot:      p.QuickShoot,
		RockCount:       len(w.Rocks),
		EnemyCount:      len(w.Enemies),
		ProjectileCount: len(w.Projectiles),
		PowerUpCount:    len(w.PowerUps),
		RNGState:        w.rng.state,
	}

	for _, e := range w.Enemies {
		snap.EnemyData = append(snap.EnemyData, float64(e.Tier), float64(e.Health), e.Box.X, e.Box.Y, float64(e.sinceHit))
	}
	for _, pr := range w.Projectiles {
		snap.ProjectileData = append(snap.ProjectileData, pr.Box.X, pr.Box.Y, pr.Heading)
	}
	for _, pu := range w.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, float64(pu.Kind), pu.Box.X, pu.Box.Y)
	}
	for _, r := range w.Rocks {
		snap.RockData = append(snap.RockData, r.Box.X, r.Box.Y)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.Velocity)
	h = h*31 + uint64(snap.Health)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AttackDamage) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Saved)        //#nosec G115 -- hash computation
	if snap.QuickShoot {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.RockCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation

	for _, data := range [][]float64{snap.EnemyData, snap.ProjectileData, snap.PowerUpData, snap.RockData} {
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + snap.RNGState

	return h
}
