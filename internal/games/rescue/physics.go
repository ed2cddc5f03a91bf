package rescue

import (
	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Rock is a static obstacle. It only blocks movement and projectiles.
type Rock struct {
	Box core.Box
}

// Collides reports whether two boxes overlap strictly on both axes.
// Boxes that only touch at an edge or corner do not collide.
func Collides(a, b core.Box) bool {
	return a.Overlaps(b)
}

// firstRock returns the first rock overlapping box, or nil.
func firstRock(box core.Box, rocks []*Rock) *Rock {
	for _, r := range rocks {
		if Collides(box, r.Box) {
			return r
		}
	}
	return nil
}

// ClampToBorder pins the box inside the map and reports whether it reached
// an edge. Touching an edge counts as reaching it.
func ClampToBorder(b *core.Box, m config.MapConfig) bool {
	hit := false

	if b.X <= m.Left {
		b.X = m.Left
		hit = true
	} else if b.Right() >= m.Right {
		b.X = m.Right - b.W
		hit = true
	}

	if b.Y <= m.Top {
		b.Y = m.Top
		hit = true
	} else if b.Bottom() >= m.Bottom {
		b.Y = m.Bottom - b.H
		hit = true
	}

	return hit
}

// outsideBorder reports whether the box touches or crosses the map edge.
func outsideBorder(b core.Box, m config.MapConfig) bool {
	return ClampToBorder(&b, m)
}
