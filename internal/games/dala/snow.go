package dala

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

// SnowParticle is one decorative snowflake swaying around the canvas center line.
type SnowParticle struct {
	Radius float64 // Sway amplitude
	Phase  float64 // Initial sway angle in degrees
	Size   float64 // Side of the drawn square; bigger flakes fall slower
	Color  core.RGB
	X      float64
	Y      float64
}

// Snowfall animates the ambient snow. It runs on every screen.
type Snowfall struct {
	Particles []SnowParticle

	cfg    config.Snow
	width  float64
	height float64
}

// NewSnowfall scatters cfg.Count flakes over the canvas.
func NewSnowfall(cfg config.Snow, width, height float64, rng *rand.Rand) *Snowfall {
	s := &Snowfall{
		Particles: make([]SnowParticle, cfg.Count),
		cfg:       cfg,
		width:     width,
		height:    height,
	}

	half := width / 2
	for i := range s.Particles {
		s.Particles[i] = SnowParticle{
			Y:      rng.Float64() * height,
			Phase:  rng.Float64() * 360,
			Size:   uniform(rng, cfg.Size),
			Radius: math.Sqrt(rng.Float64() * half * half),
			Color:  core.RGB{R: paleChannel(rng), G: paleChannel(rng), B: paleChannel(rng)},
		}
	}
	return s
}

func paleChannel(rng *rand.Rand) uint8 {
	return uint8(200 + rng.Intn(56))
}

// Update moves every flake to its position at time t, in seconds.
func (s *Snowfall) Update(t float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		angle := (p.Phase + s.cfg.AngularSpeed*t) * math.Pi / 180
		p.X = s.width/2 + p.Radius*math.Sin(angle)

		p.Y += s.cfg.FallFactor / p.Size
		if p.Y > s.height {
			p.Y = s.cfg.WrapY
		}
	}
}

// Draw paints every flake as a square.
func (s *Snowfall) Draw(c core.Canvas) {
	for _, p := range s.Particles {
		c.FillSquare(p.X, p.Y, p.Size, p.Color)
	}
}
