package core

import (
	"math"
	"unicode/utf8"
)

// Sprite describes how a filled box is drawn. Character frontends use the
// glyph, pixel frontends use only the colour.
type Sprite struct {
	Glyph rune
	Color Color
}

// Canvas is the drawing surface consumed once per frame by each entity's draw
// step. Coordinates are viewport pixels; the simulation never reads back from it.
type Canvas interface {
	// Size returns the viewport size in pixels.
	Size() (w, h float64)
	// Fill draws a filled box.
	Fill(b Box, s Sprite)
	// Outline draws the border of a box.
	Outline(b Box, c Color)
	// Text draws a line of text with its top-left corner at (x, y).
	Text(x, y float64, text string, c Color)
	// TextWidth returns the width of text in pixels.
	TextWidth(text string) float64
}

// ScreenCanvas projects viewport pixels onto a character Screen.
// Each cell covers CellW x CellH pixels.
type ScreenCanvas struct {
	Screen *Screen
	CellW  float64
	CellH  float64
}

// NewScreenCanvas wraps a screen. Non-positive cell sizes fall back to 1.
func NewScreenCanvas(s *Screen, cellW, cellH float64) *ScreenCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &ScreenCanvas{Screen: s, CellW: cellW, CellH: cellH}
}

// Size returns the pixel size covered by the screen.
func (c *ScreenCanvas) Size() (float64, float64) {
	return float64(c.Screen.Width()) * c.CellW, float64(c.Screen.Height()) * c.CellH
}

// CellRect converts a pixel box into the cells it touches.
// Boxes smaller than a cell still occupy one cell.
func (c *ScreenCanvas) CellRect(b Box) Rect {
	x0 := int(math.Floor(b.X / c.CellW))
	y0 := int(math.Floor(b.Y / c.CellH))
	x1 := int(math.Ceil(b.Right() / c.CellW))
	y1 := int(math.Ceil(b.Bottom() / c.CellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Fill draws the box with the sprite glyph.
func (c *ScreenCanvas) Fill(b Box, s Sprite) {
	glyph := s.Glyph
	if glyph == 0 {
		glyph = '█'
	}
	c.Screen.DrawRect(c.CellRect(b), glyph, s.Color)
}

// Outline draws a box outline, or a filled rect if the box is too small for one.
func (c *ScreenCanvas) Outline(b Box, col Color) {
	r := c.CellRect(b)
	if r.W < 2 || r.H < 2 {
		c.Screen.DrawRect(r, '▒', col)
		return
	}
	c.Screen.DrawBox(r, col)
}

// Text draws text starting at the cell containing (x, y).
func (c *ScreenCanvas) Text(x, y float64, text string, col Color) {
	cx := int(math.Floor(x / c.CellW))
	cy := int(math.Floor(y / c.CellH))
	c.Screen.DrawTextColor(cx, cy, text, col)
}

// TextWidth returns the width of text in pixels, one cell per rune.
func (c *ScreenCanvas) TextWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * c.CellW
}
