package core

// Image is an opaque handle to a loaded picture. The simulation only needs its size;
// frontends resolve the Name to whatever they actually draw.
type Image struct {
	Name   string
	Width  float64
	Height float64
}

// Box returns the image's box when centered at (cx, cy).
func (img Image) Box(cx, cy float64) Box {
	return CenterBox(cx, cy, img.Width, img.Height)
}

// Align is a horizontal or vertical text anchor.
type Align int

const (
	AlignStart Align = iota // left / top
	AlignCenter
	AlignEnd // right / bottom
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Size   float64
	HAlign Align
	VAlign Align
	Fill   RGB
	Stroke RGB
}

// Canvas is the drawing capability the simulation renders into.
// Coordinates are canvas pixels; images are positioned by their center.
type Canvas interface {
	// Size returns the logical canvas size in pixels.
	Size() (w, h float64)
	// DrawImage draws img at its natural size centered at (cx, cy).
	DrawImage(img Image, cx, cy float64)
	// DrawImageSized draws img stretched to w x h centered at (cx, cy).
	DrawImageSized(img Image, cx, cy, w, h float64)
	// DrawText draws text anchored at (x, y) according to style.
	DrawText(text string, x, y float64, style TextStyle)
	// FillSquare draws a filled square with its top-left corner at (x, y).
	FillSquare(x, y, size float64, c RGB)
}
