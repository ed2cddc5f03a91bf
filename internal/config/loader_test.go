package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	builtin := DefaultRescueConfig()
	if cfg.Map != builtin.Map {
		t.Errorf("map = %+v, builtin %+v", cfg.Map, builtin.Map)
	}
	if cfg.Player != builtin.Player {
		t.Errorf("player = %+v, builtin %+v", cfg.Player, builtin.Player)
	}
	if len(cfg.Tiers) != len(builtin.Tiers) {
		t.Fatalf("tiers = %d, builtin %d", len(cfg.Tiers), len(builtin.Tiers))
	}
	for i := range cfg.Tiers {
		if cfg.Tiers[i] != builtin.Tiers[i] {
			t.Errorf("tier %d = %+v, builtin %+v", i, cfg.Tiers[i], builtin.Tiers[i])
		}
	}
	if cfg.Combat != builtin.Combat || cfg.PowerUps != builtin.PowerUps || cfg.Generation != builtin.Generation {
		t.Error("combat, powerups or generation differ from builtin defaults")
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  max_health: 500\ngeneration:\n  enemies: { min: 1, max: 2 }\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Player.MaxHealth != 500 {
		t.Errorf("max_health = %d, expected 500", cfg.Player.MaxHealth)
	}
	if cfg.Generation.Enemies != (Range{Min: 1, Max: 2}) {
		t.Errorf("enemies = %+v", cfg.Generation.Enemies)
	}
	// Untouched values keep their defaults.
	if cfg.Player.AttackDamage != 10 || cfg.Map.Left != -2430 {
		t.Errorf("defaults were not preserved: %+v %+v", cfg.Player, cfg.Map)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("map: { left: 10, right: 0 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "inverted") {
		t.Errorf("expected validation error about inverted borders, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RescueConfig)
		want   string
	}{
		{"defaults are valid", func(*RescueConfig) {}, ""},
		{"tier shares", func(c *RescueConfig) { c.Tiers[0].Share = 0.9 }, "shares"},
		{"sprite count", func(c *RescueConfig) { c.Sprites.Enemies = c.Sprites.Enemies[:2] }, "sprites.enemies"},
		{"inverted range", func(c *RescueConfig) { c.Generation.Rocks = Range{Min: 5, Max: 1} }, "generation.rocks"},
		{"zero rock size", func(c *RescueConfig) { c.Sprites.Rock = Size{} }, "sprites.rock"},
		{"zero enemy size", func(c *RescueConfig) { c.Sprites.Enemies[1] = Size{W: 10} }, "sprites.enemies[1]"},
		{"negative invincibility", func(c *RescueConfig) { c.Combat.InvincibilityMS = -1 }, "invincibility_ms"},
		{"no enemies", func(c *RescueConfig) { c.Generation.Enemies = Range{} }, "enemies.min"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRescueConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultRescueConfig()
	ApplyPreset(&easy, ParsePreset("easy"))
	if easy.Player.MaxHealth != 300 || easy.Generation.Enemies.Max != 9 {
		t.Errorf("easy preset not applied: %+v %+v", easy.Player, easy.Generation.Enemies)
	}

	hard := DefaultRescueConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.MaxHealth != 150 || hard.Generation.Enemies.Min != 15 {
		t.Errorf("hard preset not applied: %+v %+v", hard.Player, hard.Generation.Enemies)
	}

	normal := DefaultRescueConfig()
	ApplyPreset(&normal, ParsePreset("bogus"))
	if normal.Player != DefaultRescueConfig().Player {
		t.Error("unknown preset should not modify config")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}
