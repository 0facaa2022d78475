package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

// ScreenCanvas draws a pixel canvas onto a rune screen by scaling every coordinate
// down to terminal cells.
type ScreenCanvas struct {
	screen  *core.Screen
	catalog *assets.Catalog
	width   float64 // Logical canvas size in pixels
	height  float64
}

// NewScreenCanvas creates a canvas of the given logical size drawing onto screen.
func NewScreenCanvas(screen *core.Screen, catalog *assets.Catalog, width, height float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen:  screen,
		catalog: catalog,
		width:   width,
		height:  height,
	}
}

// Size returns the logical canvas size.
func (c *ScreenCanvas) Size() (w, h float64) {
	return c.width, c.height
}

func (c *ScreenCanvas) col(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width()) / c.width))
}

func (c *ScreenCanvas) row(y float64) int {
	return int(math.Floor(y * float64(c.screen.Height()) / c.height))
}

// cellRect maps a pixel box to the cells it covers. It is never empty.
func (c *ScreenCanvas) cellRect(b core.Box) core.Rect {
	x0, y0 := c.col(b.Left()), c.row(b.Top())
	x1 := int(math.Ceil(b.Right() * float64(c.screen.Width()) / c.width))
	y1 := int(math.Ceil(b.Bottom() * float64(c.screen.Height()) / c.height))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// DrawImage draws img at its natural size.
func (c *ScreenCanvas) DrawImage(img core.Image, cx, cy float64) {
	c.DrawImageSized(img, cx, cy, img.Width, img.Height)
}

// DrawImageSized fills the covered cells with the image's glyph.
// Images without a glyph are transparent; cards only get a frame.
func (c *ScreenCanvas) DrawImageSized(img core.Image, cx, cy, w, h float64) {
	look, ok := c.catalog.Look(img)
	if !ok {
		return
	}

	r := c.cellRect(core.CenterBox(cx, cy, w, h))
	if look.Shape == assets.ShapeCard {
		c.screen.DrawBox(r, look.Term)
		return
	}
	if look.Glyph == 0 {
		return
	}
	c.screen.DrawRect(r, look.Glyph, look.Term)
}

// DrawText writes text anchored at (x, y). Large text is highlighted.
func (c *ScreenCanvas) DrawText(text string, x, y float64, style core.TextStyle) {
	n := utf8.RuneCountInString(text)
	col, row := c.col(x), c.row(y)

	switch style.HAlign {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignEnd:
		col -= n
	}

	color := core.ColorBrightWhite
	if style.Size >= 32 {
		color = core.ColorBrightYellow
		text = strings.ToUpper(text)
	}
	c.screen.DrawText(col, row, text, color)
}

// FillSquare draws one snowflake cell at the square's corner.
func (c *ScreenCanvas) FillSquare(x, y, size float64, clr core.RGB) {
	r := '·'
	if size >= 3.5 {
		r = '*'
	}
	c.screen.SetCell(c.col(x), c.row(y), r, clr.Terminal())
}
