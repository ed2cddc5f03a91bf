package rescue

import "github.com/vovakirdan/vampire-rescue/internal/core"

// PowerUpKind selects the effect of a pickup.
type PowerUpKind int

const (
	PowerUpHealth     PowerUpKind = iota // Restore health up to the maximum
	PowerUpAttack                        // Permanently raise attack damage
	PowerUpQuickShoot                    // Fire continuously while the trigger is held
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "Health"
	case PowerUpAttack:
		return "Attack"
	case PowerUpQuickShoot:
		return "QuickShoot"
	default:
		return "?"
	}
}

// Sprite returns how the pickup is drawn.
func (k PowerUpKind) Sprite() core.Sprite {
	switch k {
	case PowerUpHealth:
		return core.Sprite{Glyph: '♥', Color: core.ColorBrightRed}
	case PowerUpAttack:
		return core.Sprite{Glyph: '†', Color: core.ColorOrange}
	case PowerUpQuickShoot:
		return core.Sprite{Glyph: '»', Color: core.ColorBrightYellow}
	default:
		return core.Sprite{Glyph: '?', Color: core.ColorWhite}
	}
}

// PowerUp is a pickup lying on the map.
type PowerUp struct {
	Kind   PowerUpKind
	Box    core.Box
	Amount int // Health restored or attack added; unused by QuickShoot
}

// Apply applies the pickup's effect to the player.
func (pu *PowerUp) Apply(p *Player) {
	switch pu.Kind {
	case PowerUpHealth:
		p.Heal(pu.Amount)
	case PowerUpAttack:
		p.AttackDamage += pu.Amount
	case PowerUpQuickShoot:
		p.QuickShoot = true
	}
}
