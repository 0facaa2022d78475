package core

// Color names a foreground color for a screen cell. Terminal frontends map it to a
// palette entry.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorMagenta
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorBrightMagenta
	ColorBrightCyan
)

// RGB is a true color used by pixel frontends (snowflakes, sprite fills).
type RGB struct {
	R, G, B uint8
}

// Terminal approximates the color with the nearest pale palette entry.
// Snow is always light, so only the bright half of the palette is considered.
func (c RGB) Terminal() Color {
	switch {
	case c.R >= c.G && c.R >= c.B && c.R-min(c.G, c.B) > 24:
		return ColorBrightMagenta
	case c.B >= c.R && c.B >= c.G && c.B-min(c.R, c.G) > 24:
		return ColorBrightCyan
	case c.G >= c.R && c.G >= c.B && c.G-min(c.R, c.B) > 24:
		return ColorBrightGreen
	default:
		return ColorBrightWhite
	}
}

// Named colors used by the HUD.
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)
