package config

import (
	_ "embed"
)

//go:embed defaults/dala.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration. It matches defaults/dala.yaml and is
// used when the embedded document cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Canvas: Canvas{
			Width:  700,
			Height: 400,
		},
		Physics: Physics{
			Gravity:      0.45,
			JumpImpulse:  -10,
			KnockImpulse: -10,
			Floor:        0.9,
		},
		Scroll: Scroll{
			BaseSpeed: 6,
			Step:      5,
			PerScore:  250,
		},
		Player: Player{
			X:            0.2,
			Y:            0.5,
			AnimationGap: 8,
		},
		Obstacles: Obstacles{
			Spacing:     Range{Min: 120, Max: 1000},
			FirstOffset: 200,
			Lift:        10,
			Tolerance:   10,
			Weights:     Weights{Hazard: 5, Minor: 5, Major: 1},
		},
		Scoring: Scoring{
			MinorPoints: 10,
			MajorPoints: 50,
			WinScore:    240,
		},
		Background: Background{
			Layers: []Layer{
				{Name: "mountains", Spacing: Range{Min: 120, Max: 250}, Jitter: 5, Speed: 0.5, Baseline: 0.4},
				{Name: "trees", Spacing: Range{Min: 40, Max: 100}, Jitter: 10, Speed: 1.0, Baseline: 0.45},
				{Name: "flowers", Spacing: Range{Min: 60, Max: 200}, Jitter: 12, Speed: 1.5, Baseline: 0.64},
				{Name: "floor", Spacing: Range{Min: 33, Max: 33}, FollowsScroll: true, Baseline: 0.9},
			},
		},
		Snow: Snow{
			Count:        300,
			Size:         Range{Min: 2, Max: 5},
			AngularSpeed: 15,
			FallFactor:   3,
			WrapY:        -50,
			ClockRate:    60,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// FloorY returns the floor line in canvas pixels.
func (c Config) FloorY() float64 {
	return c.Canvas.Height * c.Physics.Floor
}
