package dala

import (
	"math"
	"testing"

	"github.com/vovakirdan/dala-run/internal/config"
)

func TestScrollSpeed(t *testing.T) {
	cfg := config.DefaultConfig().Scroll

	tests := []struct {
		score int
		want  float64
	}{
		{0, 6},
		{10, 6.2},
		{250, 11},
		{500, 16},
	}

	for _, tt := range tests {
		if got := ScrollSpeed(cfg, tt.score); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ScrollSpeed(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestScrollSpeedStrictlyIncreasing(t *testing.T) {
	cfg := config.DefaultConfig().Scroll
	step := cfg.Step / cfg.PerScore

	prev := ScrollSpeed(cfg, 0)
	for score := 1; score <= 1000; score++ {
		got := ScrollSpeed(cfg, score)
		if got <= prev {
			t.Fatalf("ScrollSpeed(%d) = %v is not above ScrollSpeed(%d) = %v", score, got, score-1, prev)
		}
		// No jumps at multiples of per_score.
		if math.Abs(got-prev-step) > 1e-9 {
			t.Fatalf("ScrollSpeed jumps by %v at score %d, expected %v", got-prev, score, step)
		}
		prev = got
	}
}
