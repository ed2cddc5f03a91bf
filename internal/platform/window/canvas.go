package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Background is the clear colour of the window.
var Background = color.RGBA{R: 16, G: 12, B: 20, A: 255}

const outlineWidth = 2

// Canvas draws core primitives onto an ebiten image.
type Canvas struct {
	dst  *ebiten.Image
	face font.Face
}

// NewCanvas wraps the frame image.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, face: basicfont.Face7x13}
}

// Size returns the image size in pixels.
func (c *Canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Fill draws a filled rectangle. A blank glyph clears the box to the background.
func (c *Canvas) Fill(b core.Box, s core.Sprite) {
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fillColor(s), false)
}

// Outline draws the border of a box.
func (c *Canvas) Outline(b core.Box, col core.Color) {
	vector.StrokeRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), outlineWidth, toRGBA(col), false)
}

// Text draws text with its top-left corner at (x, y).
func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, c.face, int(x), int(y)+ascent, toRGBA(col))
}

// TextWidth returns the advance width of text in pixels.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(font.MeasureString(c.face, s).Ceil())
}

// fillColor returns the colour a sprite is filled with.
func fillColor(s core.Sprite) color.RGBA {
	if s.Glyph == ' ' {
		return Background
	}
	return toRGBA(s.Color)
}

// toRGBA converts a palette colour to an opaque RGBA value.
func toRGBA(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
