package core

// Color represents a foreground color for a screen cell or a canvas primitive.
// Uses ANSI 256-color codes for terminal compatibility; pixel frontends use RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the RGB value of each color, indexed by Color.
var palette = [...][3]uint8{
	ColorDefault:       {220, 220, 220},
	ColorRed:           {170, 0, 0},
	ColorGreen:         {0, 170, 0},
	ColorYellow:        {170, 150, 0},
	ColorBlue:          {40, 60, 200},
	ColorMagenta:       {170, 0, 170},
	ColorCyan:          {0, 170, 170},
	ColorWhite:         {200, 200, 200},
	ColorBrightRed:     {255, 85, 85},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 85},
	ColorBrightBlue:    {173, 216, 230},
	ColorBrightMagenta: {255, 85, 255},
	ColorBrightCyan:    {85, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
}

// RGB returns the color as 8-bit red, green and blue components.
// Unknown colors map to ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		c = ColorDefault
	}
	p := palette[c]
	return p[0], p[1], p[2]
}
