// Package config provides YAML-based game configuration loading and
// difficulty presets for the rescue game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// RescueConfig contains all tunable constants of the game.
// Quantities named *PerSecond are converted to per-frame values by the
// simulation using the runtime tick rate.
type RescueConfig struct {
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Tiers      []TierConfig     `yaml:"tiers"`
	Combat     CombatConfig     `yaml:"combat"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Generation GenerationConfig `yaml:"generation"`
	Sprites    SpriteSizes      `yaml:"sprites"`
	Render     RenderConfig     `yaml:"render"`
}

// MapConfig defines the outer border of the playable area in world pixels.
type MapConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Width returns the horizontal span of the map.
func (m MapConfig) Width() float64 { return m.Right - m.Left }

// Height returns the vertical span of the map.
func (m MapConfig) Height() float64 { return m.Bottom - m.Top }

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	StartX            float64 `yaml:"start_x"`
	StartY            float64 `yaml:"start_y"`
	MaxHealth         int     `yaml:"max_health"`
	MaxSpeedPerSecond float64 `yaml:"max_speed"`
	AttackDamage      int     `yaml:"attack_damage"`
}

// TierConfig is one enemy stat preset. Tiers are listed weakest first.
type TierConfig struct {
	Name           string  `yaml:"name"`
	MaxHealth      int     `yaml:"max_health"`
	SpeedPerSecond float64 `yaml:"speed"`
	AttackDamage   int     `yaml:"attack_damage"`
	Share          float64 `yaml:"share"` // Fraction of generated enemies
}

// CombatConfig defines projectile and contact-damage parameters.
type CombatConfig struct {
	InvincibilityMS          int     `yaml:"invincibility_ms"`
	ProjectileSpeedPerSecond float64 `yaml:"projectile_speed"`
	ProjectileWidth          float64 `yaml:"projectile_width"`
	ProjectileHeight         float64 `yaml:"projectile_height"`
}

// PowerUpConfig defines pickup magnitudes and the generation mix.
type PowerUpConfig struct {
	HealthRestore    int     `yaml:"health_restore"`
	AttackBoost      int     `yaml:"attack_boost"`
	AttackBoostShare float64 `yaml:"attack_boost_share"` // Share of all power-ups that are attack boosts
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GenerationConfig defines how many things are placed on the map.
type GenerationConfig struct {
	Rocks    Range `yaml:"rocks"`
	Enemies  Range `yaml:"enemies"`
	PowerUps Range `yaml:"powerups"`
}

// Size is a sprite's natural size in pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpriteSizes holds the hitbox size of every sprite, indexed the way the
// game looks them up. Enemy sizes are listed per tier, weakest first.
type SpriteSizes struct {
	Player  Size   `yaml:"player"`
	Enemies []Size `yaml:"enemies"`
	Rock    Size   `yaml:"rock"`
	PowerUp Size   `yaml:"powerup"`
}

// RenderConfig defines how world pixels map onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	CullMargin float64 `yaml:"cull_margin"`
}

// Validate reports configuration values the simulation cannot run with.
func (c RescueConfig) Validate() error {
	var errs []error

	if c.Map.Width() <= 0 || c.Map.Height() <= 0 {
		errs = append(errs, fmt.Errorf("map borders are inverted: %+v", c.Map))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.max_health must be positive"))
	}
	if c.Player.MaxSpeedPerSecond <= 0 {
		errs = append(errs, errors.New("player.max_speed must be positive"))
	}
	if len(c.Tiers) == 0 {
		errs = append(errs, errors.New("at least one enemy tier is required"))
	}

	shares := 0.0
	for i, t := range c.Tiers {
		if t.MaxHealth <= 0 || t.SpeedPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("tier %d (%s) needs positive health and speed", i, t.Name))
		}
		shares += t.Share
	}
	if len(c.Tiers) > 0 && math.Abs(shares-1) > 0.001 {
		errs = append(errs, fmt.Errorf("tier shares sum to %.3f, expected 1", shares))
	}
	if len(c.Sprites.Enemies) != len(c.Tiers) {
		errs = append(errs, fmt.Errorf("sprites.enemies has %d sizes for %d tiers", len(c.Sprites.Enemies), len(c.Tiers)))
	}

	for name, s := range map[string]Size{
		"player":  c.Sprites.Player,
		"rock":    c.Sprites.Rock,
		"powerup": c.Sprites.PowerUp,
	} {
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("sprites.%s must have a positive size", name))
		}
	}
	for i, s := range c.Sprites.Enemies {
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("sprites.enemies[%d] must have a positive size", i))
		}
	}

	for name, r := range map[string]Range{
		"rocks":    c.Generation.Rocks,
		"enemies":  c.Generation.Enemies,
		"powerups": c.Generation.PowerUps,
	} {
		if r.Min < 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("generation.%s range is invalid: %d..%d", name, r.Min, r.Max))
		}
	}
	if c.Generation.Enemies.Min < 1 {
		errs = append(errs, errors.New("generation.enemies.min must be at least 1"))
	}

	if c.Combat.InvincibilityMS < 0 {
		errs = append(errs, errors.New("combat.invincibility_ms must not be negative"))
	}
	if c.Combat.ProjectileSpeedPerSecond <= 0 {
		errs = append(errs, errors.New("combat.projectile_speed must be positive"))
	}
	if c.PowerUps.AttackBoostShare < 0 || c.PowerUps.AttackBoostShare > 1 {
		errs = append(errs, errors.New("powerups.attack_boost_share must be within [0, 1]"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rescue config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p
	default:
		return ""
	}
}
