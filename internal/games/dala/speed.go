package dala

import (
	"math/rand"

	"github.com/vovakirdan/dala-run/internal/config"
)

// ScrollSpeed returns the world scroll speed in pixels per tick for a score.
// The division is fractional so speed grows continuously with every point.
func ScrollSpeed(cfg config.Scroll, score int) float64 {
	return cfg.BaseSpeed + cfg.Step*(float64(score)/cfg.PerScore)
}

// uniform draws from [r.Min, r.Max). A zero-width range always yields r.Min.
func uniform(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*r.Width()
}
