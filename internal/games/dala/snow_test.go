package dala

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dala-run/internal/config"
)

func TestNewSnowfall(t *testing.T) {
	cfg := config.DefaultConfig().Snow
	s := NewSnowfall(cfg, 700, 400, rand.New(rand.NewSource(9)))

	if len(s.Particles) != 300 {
		t.Fatalf("len(Particles) = %d, expected 300", len(s.Particles))
	}
	for i, p := range s.Particles {
		if p.Size < 2 || p.Size >= 5 {
			t.Errorf("particle %d: Size = %v", i, p.Size)
		}
		if p.Phase < 0 || p.Phase >= 360 {
			t.Errorf("particle %d: Phase = %v", i, p.Phase)
		}
		if p.Radius < 0 || p.Radius > 350 {
			t.Errorf("particle %d: Radius = %v", i, p.Radius)
		}
		if p.Color.R < 200 || p.Color.G < 200 || p.Color.B < 200 {
			t.Errorf("particle %d: Color = %+v is not pale", i, p.Color)
		}
	}
}

func TestSnowUpdate(t *testing.T) {
	s := &Snowfall{
		Particles: []SnowParticle{
			{Radius: 100, Phase: 90, Size: 2, Y: 10},
			{Radius: 0, Phase: 0, Size: 3, Y: 399.5},
		},
		cfg:    config.DefaultConfig().Snow,
		width:  700,
		height: 400,
	}

	s.Update(0)

	if got := s.Particles[0].X; math.Abs(got-450) > 1e-9 {
		t.Errorf("X = %v, expected 450", got)
	}
	if got := s.Particles[0].Y; got != 11.5 {
		t.Errorf("Y = %v, expected 11.5", got)
	}
	if got := s.Particles[1].Y; got != -50 {
		t.Errorf("wrapped Y = %v, expected -50", got)
	}

	// Six seconds at 15 deg/s sways the flake by 90 degrees.
	s.Update(6)
	if got := s.Particles[0].X; math.Abs(got-350) > 1e-9 {
		t.Errorf("X after 6s = %v, expected 350", got)
	}
}
