package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// paintSprite draws a catalog image procedurally at its natural size.
func paintSprite(img core.Image, look assets.Look) *ebiten.Image {
	w, h := float32(img.Width), float32(img.Height)
	dst := ebiten.NewImage(int(math.Ceil(img.Width)), int(math.Ceil(img.Height)))

	switch look.Shape {
	case assets.ShapeRect:
		vector.DrawFilledRect(dst, 0, 0, w, h, look.Fill, false)
		vector.DrawFilledRect(dst, 0, h*0.1, w, 2, look.Accent, false)

	case assets.ShapeBall:
		r := min(w, h) / 2
		vector.DrawFilledCircle(dst, w/2, h/2, r, look.Fill, true)
		vector.DrawFilledCircle(dst, w/2-r/3, h/2-r/3, r/3, look.Accent, true)

	case assets.ShapePeak:
		fillTriangle(dst, 0, h, w/2, 0, w, h, look.Fill)
		fillTriangle(dst, w*0.35, h*0.3, w/2, 0, w*0.65, h*0.3, look.Accent)

	case assets.ShapeTree:
		vector.DrawFilledRect(dst, w*0.4, h*0.75, w*0.2, h*0.25, look.Accent, false)
		fillTriangle(dst, 0, h*0.8, w/2, 0, w, h*0.8, look.Fill)

	case assets.ShapeFlower:
		vector.DrawFilledRect(dst, w*0.45, h*0.4, w*0.1, h*0.6, look.Accent, false)
		vector.DrawFilledCircle(dst, w/2, h*0.3, min(w, h)*0.3, look.Fill, true)

	case assets.ShapeHorse:
		paintHorse(dst, w, h, look)

	case assets.ShapeSock:
		vector.DrawFilledRect(dst, w*0.3, h*0.2, w*0.45, h*0.6, look.Fill, false)
		vector.DrawFilledRect(dst, 0, h*0.65, w*0.75, h*0.35, look.Fill, false)
		vector.DrawFilledRect(dst, w*0.25, 0, w*0.55, h*0.2, look.Accent, false)

	case assets.ShapeCard:
		bg := look.Fill
		bg.A = 0xd0
		vector.DrawFilledRect(dst, w*0.1, h*0.15, w*0.8, h*0.7, bg, false)
		vector.StrokeRect(dst, w*0.1, h*0.15, w*0.8, h*0.7, 4, look.Accent, false)

	case assets.ShapeGradient:
		for y := float32(0); y < h; y += 4 {
			vector.DrawFilledRect(dst, 0, y, w, 4, lerpColor(look.Fill, look.Accent, float64(y/h)), false)
		}
	}
	return dst
}

// paintHorse draws a Dala horse facing right. Pose 1 swaps the legs.
func paintHorse(dst *ebiten.Image, w, h float32, look assets.Look) {
	// Body, neck and head.
	vector.DrawFilledRect(dst, w*0.15, h*0.35, w*0.6, h*0.3, look.Fill, false)
	vector.DrawFilledRect(dst, w*0.65, h*0.1, w*0.15, h*0.35, look.Fill, false)
	vector.DrawFilledRect(dst, w*0.7, h*0.05, w*0.3, h*0.15, look.Fill, false)
	// Saddle ornament.
	vector.DrawFilledRect(dst, w*0.3, h*0.38, w*0.25, h*0.08, look.Accent, false)

	front, back := w*0.62, w*0.18
	if look.Pose == 1 {
		front, back = w*0.55, w*0.25
	}
	vector.DrawFilledRect(dst, back, h*0.65, w*0.1, h*0.35, look.Fill, false)
	vector.DrawFilledRect(dst, front, h*0.65, w*0.1, h*0.35, look.Fill, false)
	// Tail.
	vector.DrawFilledRect(dst, 0, h*0.35, w*0.15, h*0.06, look.Accent, false)
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2) with clr.
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	path.LineTo(x2, y2)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// lerpColor blends from a to b as t goes from 0 to 1.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
