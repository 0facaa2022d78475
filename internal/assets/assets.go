// Package assets describes every picture the game draws. The simulation only sees
// core.Image handles (name and size); each frontend turns a handle into something drawable
// through its Look.
package assets

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

// Shape selects how a window frontend paints a sprite procedurally.
type Shape int

const (
	ShapeRect     Shape = iota // Solid block
	ShapeBall                  // Filled circle
	ShapePeak                  // Triangle, apex up
	ShapeTree                  // Triangle crown on a trunk
	ShapeFlower                // Stalk with a round bloom
	ShapeHorse                 // Dala horse silhouette
	ShapeSock                  // Christmas sock
	ShapeCard                  // Framed panel for full-screen cards
	ShapeGradient              // Vertical sky gradient
)

// Look is the rendering recipe for one image.
type Look struct {
	Glyph  rune       // Terminal fill rune; 0 leaves cells untouched
	Term   core.Color // Terminal color
	Shape  Shape      // Window shape
	Fill   color.RGBA // Window primary color
	Accent color.RGBA // Window secondary color
	Pose   int        // Animation pose for shapes with several frames
}

// Catalog holds the image handles of one game plus their looks.
type Catalog struct {
	Backdrop    core.Image
	StartCard   core.Image
	SuccessCard core.Image
	HorseFrames []core.Image
	// Obstacles are indexed by variant: hazard, minor reward, major reward.
	Obstacles [3]core.Image
	// Layers are indexed like config.Background.Layers, back to front.
	Layers [][]core.Image

	looks map[string]Look
}

// Look returns the rendering recipe for an image handle.
func (c *Catalog) Look(img core.Image) (Look, bool) {
	l, ok := c.looks[img.Name]
	return l, ok
}

// Images returns every image handle in the catalog.
func (c *Catalog) Images() []core.Image {
	out := []core.Image{c.Backdrop, c.StartCard, c.SuccessCard}
	out = append(out, c.HorseFrames...)
	out = append(out, c.Obstacles[:]...)
	for _, layer := range c.Layers {
		out = append(out, layer...)
	}
	return out
}

// ForLayers checks that the catalog can draw the configured background layers.
// A sprite is placed spacing after the left edge of the previous one, so a wide sprite
// followed by a narrow one only stays to its right if spacing.min exceeds half the
// width difference.
func (c *Catalog) ForLayers(layers []config.Layer) error {
	if len(c.Layers) < len(layers) {
		return fmt.Errorf("assets: catalog has %d background layers, config wants %d", len(c.Layers), len(layers))
	}
	for i, l := range layers {
		images := c.Layers[i]
		if len(images) == 0 {
			return fmt.Errorf("assets: background layer %d has no images", i)
		}

		narrow, wide := images[0].Width, images[0].Width
		for _, img := range images[1:] {
			narrow = min(narrow, img.Width)
			wide = max(wide, img.Width)
		}
		if spread := (wide - narrow) / 2; l.Spacing.Min <= spread {
			return fmt.Errorf("%w: background.layers[%d] (%s) spacing.min must exceed %v for its images, got %v",
				config.ErrInvalid, i, l.Name, spread, l.Spacing.Min)
		}
	}
	return nil
}

func (c *Catalog) add(name string, w, h float64, look Look) core.Image {
	img := core.Image{Name: name, Width: w, Height: h}
	c.looks[name] = look
	return img
}

// Default returns the built-in catalog sized for a canvas of the given size.
// Full-screen images (backdrop and cards) stretch to the canvas.
func Default(canvasW, canvasH float64) *Catalog {
	c := &Catalog{looks: make(map[string]Look)}

	c.Backdrop = c.add("bg/backdrop", canvasW, canvasH, Look{
		Shape: ShapeGradient, Fill: rgba(0x8f, 0xb8, 0xde), Accent: rgba(0xe8, 0xf1, 0xfa),
	})
	c.StartCard = c.add("card/start", canvasW, canvasH, Look{
		Shape: ShapeCard, Fill: rgba(0xb2, 0x22, 0x22), Accent: rgba(0xf5, 0xd0, 0x60),
	})
	c.SuccessCard = c.add("card/success", canvasW, canvasH, Look{
		Shape: ShapeCard, Fill: rgba(0x1f, 0x6f, 0x3f), Accent: rgba(0xf5, 0xd0, 0x60),
	})

	horse := Look{Glyph: '█', Term: core.ColorOrange, Shape: ShapeHorse, Fill: rgba(0xd2, 0x2b, 0x2b), Accent: rgba(0xf5, 0xd0, 0x60)}
	stride := horse
	stride.Glyph = '▓'
	stride.Pose = 1
	c.HorseFrames = []core.Image{
		c.add("horse/1", 64, 56, horse),
		c.add("horse/2", 64, 56, stride),
	}

	c.Obstacles = [3]core.Image{
		c.add("obstacles/meatball", 30, 30, Look{Glyph: '●', Term: core.ColorRed, Shape: ShapeBall, Fill: rgba(0x7a, 0x3b, 0x1e), Accent: rgba(0x4a, 0x21, 0x0f)}),
		c.add("obstacles/plantball", 28, 28, Look{Glyph: '❀', Term: core.ColorBrightGreen, Shape: ShapeBall, Fill: rgba(0x4c, 0xa6, 0x4c), Accent: rgba(0xe0, 0xf0, 0xa0)}),
		c.add("obstacles/sock", 26, 36, Look{Glyph: '◆', Term: core.ColorBrightYellow, Shape: ShapeSock, Fill: rgba(0xc8, 0x1d, 0x25), Accent: rgba(0xff, 0xff, 0xff)}),
	}

	mountain := Look{Glyph: '▲', Term: core.ColorGray, Shape: ShapePeak, Fill: rgba(0x6d, 0x7b, 0x8d), Accent: rgba(0xf4, 0xf8, 0xfc)}
	tree := Look{Glyph: '♣', Term: core.ColorGreen, Shape: ShapeTree, Fill: rgba(0x1e, 0x5b, 0x3a), Accent: rgba(0x5a, 0x3a, 0x22)}
	flower := Look{Glyph: '✿', Term: core.ColorMagenta, Shape: ShapeFlower, Fill: rgba(0xe0, 0x5a, 0x8a), Accent: rgba(0x3c, 0x8c, 0x3c)}
	floor := Look{Glyph: '▀', Term: core.ColorBrightWhite, Shape: ShapeRect, Fill: rgba(0xf2, 0xf5, 0xf8), Accent: rgba(0xc0, 0xcc, 0xd8)}

	c.Layers = [][]core.Image{
		{
			c.add("bg/layer1/mount1", 240, 150, mountain),
			c.add("bg/layer1/mount2", 200, 120, mountain),
			c.add("bg/layer1/mount3", 280, 170, mountain),
			c.add("bg/layer1/mount4", 180, 100, mountain),
		},
		{
			c.add("bg/layer2/tree1", 40, 90, tree),
			c.add("bg/layer2/tree2", 50, 110, tree),
			c.add("bg/layer2/tree3", 34, 70, tree),
		},
		{
			c.add("bg/layer3/flower1", 18, 30, flower),
			c.add("bg/layer3/flower2", 22, 26, flower),
		},
		{
			c.add("bg/layer4/floor", 33, 80, floor),
		},
	}

	return c
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
