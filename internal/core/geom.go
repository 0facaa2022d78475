// Package core provides fundamental types and utilities shared by the simulation and its
// frontends. It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a center-anchored box in canvas pixels. Sprites are positioned by their center,
// so collision and scrolling work on Boxes rather than Rects.
type Box struct {
	CX, CY float64 // Center
	W, H   float64 // Full width and height
}

// CenterBox creates a box from its center and size.
func CenterBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.H/2 }

// Touches reports whether two boxes overlap by more than tolerance on both axes.
// Centers closer than the summed half extents minus tolerance count as a hit.
func (b Box) Touches(other Box, tolerance float64) bool {
	dx := math.Abs(b.CX - other.CX)
	dy := math.Abs(b.CY - other.CY)
	return dx < b.W/2+other.W/2-tolerance && dy < b.H/2+other.H/2-tolerance
}
