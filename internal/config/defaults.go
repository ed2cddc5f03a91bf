package config

import (
	_ "embed"
)

//go:embed defaults/rescue.yaml
var defaultRescueYAML []byte

// DefaultRescueConfig returns the built-in configuration. It mirrors
// defaults/rescue.yaml and is used when the embedded YAML cannot be parsed.
func DefaultRescueConfig() RescueConfig {
	return RescueConfig{
		Map: MapConfig{
			Left:   -2430,
			Right:  1850,
			Top:    -1210,
			Bottom: 1000,
		},
		Player: PlayerConfig{
			MaxHealth:         200,
			MaxSpeedPerSecond: 200,
			AttackDamage:      10,
		},
		Tiers: []TierConfig{
			{Name: "fledgling", MaxHealth: 50, SpeedPerSecond: 210, AttackDamage: 10, Share: 0.4},
			{Name: "stalker", MaxHealth: 75, SpeedPerSecond: 150, AttackDamage: 15, Share: 0.3},
			{Name: "brute", MaxHealth: 100, SpeedPerSecond: 100, AttackDamage: 30, Share: 0.2},
			{Name: "elder", MaxHealth: 250, SpeedPerSecond: 80, AttackDamage: 50, Share: 0.1},
		},
		Combat: CombatConfig{
			InvincibilityMS:          3000,
			ProjectileSpeedPerSecond: 400,
			ProjectileWidth:          20,
			ProjectileHeight:         10,
		},
		PowerUps: PowerUpConfig{
			HealthRestore:    20,
			AttackBoost:      10,
			AttackBoostShare: 0.4,
		},
		Generation: GenerationConfig{
			Rocks:    Range{Min: 12, Max: 16},
			Enemies:  Range{Min: 10, Max: 15},
			PowerUps: Range{Min: 9, Max: 12},
		},
		Sprites: SpriteSizes{
			Player: Size{W: 64, H: 64},
			Enemies: []Size{
				{W: 64, H: 72},
				{W: 72, H: 80},
				{W: 80, H: 88},
				{W: 96, H: 104},
			},
			Rock:    Size{W: 128, H: 96},
			PowerUp: Size{W: 48, H: 48},
		},
		Render: RenderConfig{
			CellWidth:  16,
			CellHeight: 32,
			CullMargin: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `rescue config`-style dumps.
func DefaultYAML() []byte {
	return defaultRescueYAML
}
