package dala

import (
	"math/rand"

	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

// BackgroundSprite is one piece of scenery.
type BackgroundSprite struct {
	CenterX float64
	CenterY float64
	Image   core.Image
}

// Box returns the sprite's box.
func (s BackgroundSprite) Box() core.Box {
	return s.Image.Box(s.CenterX, s.CenterY)
}

// BackgroundLayer is one parallax strip of scenery that always spans the canvas width.
type BackgroundLayer struct {
	Config  config.Layer
	Images  []core.Image
	Sprites []BackgroundSprite

	canvasH float64
}

// NewBackgroundLayer creates an empty layer. Call Fill before the first Update.
func NewBackgroundLayer(cfg config.Layer, images []core.Image, canvasH float64) *BackgroundLayer {
	return &BackgroundLayer{
		Config:  cfg,
		Images:  images,
		Sprites: make([]BackgroundSprite, 0, 16),
		canvasH: canvasH,
	}
}

// Fill replaces the layer's sprites with a fresh strip starting at x = 0 and reaching
// past the right edge of the canvas.
func (l *BackgroundLayer) Fill(canvasW float64, rng *rand.Rand) {
	l.Sprites = l.Sprites[:0]
	l.Sprites = append(l.Sprites, l.generate(0, true, rng))
	for l.tailLeft() < canvasW {
		l.Sprites = append(l.Sprites, l.generate(l.tailLeft(), false, rng))
	}
}

// Speed returns how far the layer moves this tick given the world scroll speed.
func (l *BackgroundLayer) Speed(scroll float64) float64 {
	if l.Config.FollowsScroll {
		return scroll
	}
	return l.Config.Speed
}

// Update shifts the layer left, drops the head once it is fully off-screen and appends a
// new sprite once the tail has entered the canvas.
func (l *BackgroundLayer) Update(speed, canvasW float64, rng *rand.Rand) (dropped, appended bool) {
	for i := range l.Sprites {
		l.Sprites[i].CenterX -= speed
	}

	if len(l.Sprites) > 0 && l.Sprites[0].Box().Right() < 0 {
		l.Sprites = l.Sprites[1:]
		dropped = true
	}

	if len(l.Sprites) == 0 {
		l.Fill(canvasW, rng)
		return dropped, true
	}

	if left := l.tailLeft(); left < canvasW {
		l.Sprites = append(l.Sprites, l.generate(left, false, rng))
		appended = true
	}
	return dropped, appended
}

func (l *BackgroundLayer) tailLeft() float64 {
	return l.Sprites[len(l.Sprites)-1].Box().Left()
}

// generate builds the sprite that follows a tail whose left edge is at prevLeft.
// The first sprite of a strip is centered on x = 0 instead.
func (l *BackgroundLayer) generate(prevLeft float64, first bool, rng *rand.Rand) BackgroundSprite {
	img := l.Images[rng.Intn(len(l.Images))]

	cx := 0.0
	if !first {
		cx = prevLeft + img.Width/2 + uniform(rng, l.Config.Spacing)
	}

	baseline := l.Config.Baseline * l.canvasH
	cy := uniform(rng, config.Range{Min: baseline - l.Config.Jitter, Max: baseline + l.Config.Jitter})

	return BackgroundSprite{CenterX: cx, CenterY: cy, Image: img}
}
