package rescue

import (
	"math"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Projectile is a shot travelling in a straight line.
// Heading and velocity are fixed when it is created.
type Projectile struct {
	Box     core.Box
	Heading float64 // Radians, screen coordinates (y grows downwards)
	VX, VY  float64 // Pixels per frame
	Damage  int
}

// NewProjectile creates a shot centred on the origin and aimed at the target.
func NewProjectile(originX, originY, targetX, targetY, speed float64, damage int, w, h float64) *Projectile {
	heading := math.Atan2(targetY-originY, targetX-originX)
	return &Projectile{
		Box:     core.NewBox(originX-w/2, originY-h/2, w, h),
		Heading: heading,
		VX:      speed * math.Cos(heading),
		VY:      speed * math.Sin(heading),
		Damage:  damage,
	}
}

// Advance moves the projectile by one frame.
func (p *Projectile) Advance() {
	p.Box.X += p.VX
	p.Box.Y += p.VY
}
