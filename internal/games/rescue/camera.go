package rescue

import (
	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Camera is the visible region of the map. It only affects drawing and the
// conversion of the pointer into an aiming target.
type Camera struct {
	X, Y         float64 // Top-left corner in world pixels
	ViewW, ViewH float64
}

// Follow centres the camera on the target, keeping the view inside the map.
func (c *Camera) Follow(target core.Box, m config.MapConfig) {
	c.X = clampEdge(target.X-(c.ViewW-target.W)/2, m.Left, m.Right-c.ViewW)
	c.Y = clampEdge(target.Y-(c.ViewH-target.H)/2, m.Top, m.Bottom-c.ViewH)
}

// clampEdge clamps v into [lo, hi]. When the view is larger than the map
// hi wins.
func clampEdge(v, lo, hi float64) float64 {
	if v >= hi {
		return hi
	}
	if v <= lo {
		return lo
	}
	return v
}

// View returns the visible region in world pixels.
func (c Camera) View() core.Box {
	return core.NewBox(c.X, c.Y, c.ViewW, c.ViewH)
}

// Visible reports whether b is within margin pixels of the view.
func (c Camera) Visible(b core.Box, margin float64) bool {
	return c.View().Expand(margin).Overlaps(b)
}

// ToWorld converts viewport pixels into world pixels.
func (c Camera) ToWorld(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}

// ToView converts a world box into viewport pixels.
func (c Camera) ToView(b core.Box) core.Box {
	b.X -= c.X
	b.Y -= c.Y
	return b
}
