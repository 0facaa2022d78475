package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

// baseFontSize is the pixel height of the bitmap face; larger text is scaled up.
const baseFontSize = 13

// outline is the stroke width of HUD text, in pixels at size 13.
const outline = 1

// imageCanvas implements core.Canvas on an Ebitengine image.
type imageCanvas struct {
	dst     *ebiten.Image
	catalog *assets.Catalog
	sprites map[string]*ebiten.Image
	face    *text.GoXFace
	width   float64
	height  float64
}

func newImageCanvas(catalog *assets.Catalog, width, height float64) *imageCanvas {
	return &imageCanvas{
		catalog: catalog,
		sprites: make(map[string]*ebiten.Image),
		face:    text.NewGoXFace(basicfont.Face7x13),
		width:   width,
		height:  height,
	}
}

func (c *imageCanvas) Size() (w, h float64) {
	return c.width, c.height
}

// sprite returns the painted image for a handle, painting it on first use.
func (c *imageCanvas) sprite(img core.Image) *ebiten.Image {
	if s, ok := c.sprites[img.Name]; ok {
		return s
	}
	look, ok := c.catalog.Look(img)
	if !ok {
		return nil
	}
	s := paintSprite(img, look)
	c.sprites[img.Name] = s
	return s
}

func (c *imageCanvas) DrawImage(img core.Image, cx, cy float64) {
	c.DrawImageSized(img, cx, cy, img.Width, img.Height)
}

func (c *imageCanvas) DrawImageSized(img core.Image, cx, cy, w, h float64) {
	s := c.sprite(img)
	if s == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/img.Width, h/img.Height)
	op.GeoM.Translate(cx-w/2, cy-h/2)
	c.dst.DrawImage(s, op)
}

func (c *imageCanvas) DrawText(str string, x, y float64, style core.TextStyle) {
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / baseFontSize
	}

	draw := func(dx, dy float64, clr core.RGB) {
		op := &text.DrawOptions{}
		op.PrimaryAlign = textAlign(style.HAlign)
		op.SecondaryAlign = textAlign(style.VAlign)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx*scale, y+dy*scale)
		op.ColorScale.ScaleWithColor(rgba(clr))
		text.Draw(c.dst, str, c.face, op)
	}

	for dx := -outline; dx <= outline; dx++ {
		for dy := -outline; dy <= outline; dy++ {
			if dx != 0 || dy != 0 {
				draw(float64(dx), float64(dy), style.Stroke)
			}
		}
	}
	draw(0, 0, style.Fill)
}

func (c *imageCanvas) FillSquare(x, y, size float64, clr core.RGB) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(size), float32(size), rgba(clr), false)
}

func textAlign(a core.Align) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
