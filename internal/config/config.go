// Package config provides YAML-based configuration loading for the game.
// Every tuning constant of the simulation lives here so sessions never hardcode numbers.
package config

// Config contains all configuration for a Run, Dala, Run! session.
type Config struct {
	Canvas     Canvas     `yaml:"canvas"`
	Physics    Physics    `yaml:"physics"`
	Scroll     Scroll     `yaml:"scroll"`
	Player     Player     `yaml:"player"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Scoring    Scoring    `yaml:"scoring"`
	Background Background `yaml:"background"`
	Snow       Snow       `yaml:"snow"`
	Audio      Audio      `yaml:"audio"`
}

// Canvas defines the logical drawing surface in pixels.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the vertical kinematics of the player.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	KnockImpulse float64 `yaml:"knock_impulse"` // Flinch applied when a hazard is hit
	Floor        float64 `yaml:"floor"`         // Floor line relative to canvas height
}

// Scroll defines the score-driven world scroll speed:
// speed = base_speed + step * score / per_score.
type Scroll struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Step      float64 `yaml:"step"`
	PerScore  float64 `yaml:"per_score"`
}

// Player defines the player's start position and animation.
type Player struct {
	X            float64 `yaml:"x"` // Relative to canvas width
	Y            float64 `yaml:"y"` // Relative to canvas height
	AnimationGap int     `yaml:"animation_gap"`
}

// Range is a closed interval to draw uniform values from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Width returns the length of the interval.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Obstacles defines obstacle spawning and collision.
type Obstacles struct {
	Spacing     Range   `yaml:"spacing"`      // Gap between successive obstacle centers
	FirstOffset float64 `yaml:"first_offset"` // Distance past the right edge of the first obstacle
	Lift        float64 `yaml:"lift"`         // Gap between the floor line and obstacle bottoms
	Tolerance   float64 `yaml:"tolerance"`    // Overlap forgiven by the collision test
	Weights     Weights `yaml:"weights"`
}

// Weights are the relative odds of each obstacle variant.
type Weights struct {
	Hazard float64 `yaml:"hazard"`
	Minor  float64 `yaml:"minor"`
	Major  float64 `yaml:"major"`
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.Hazard + w.Minor + w.Major
}

// Scoring defines reward values and the win condition.
type Scoring struct {
	MinorPoints int `yaml:"minor_points"`
	MajorPoints int `yaml:"major_points"`
	WinScore    int `yaml:"win_score"`
}

// Background defines the parallax layers, back to front.
type Background struct {
	Layers []Layer `yaml:"layers"`
}

// Layer defines how sprites of one parallax layer are generated and scrolled.
type Layer struct {
	Name          string  `yaml:"name"`
	Spacing       Range   `yaml:"spacing"`        // Gap between successive left edges
	Jitter        float64 `yaml:"jitter"`         // Max vertical offset from the baseline
	Speed         float64 `yaml:"speed"`          // Fixed pixels per tick
	FollowsScroll bool    `yaml:"follows_scroll"` // Scroll with the world speed instead of Speed
	Baseline      float64 `yaml:"baseline"`       // Sprite center line relative to canvas height
}

// Snow defines the ambient snowfall.
type Snow struct {
	Count        int     `yaml:"count"`
	Size         Range   `yaml:"size"`
	AngularSpeed float64 `yaml:"angular_speed"` // Degrees per second of sway
	FallFactor   float64 `yaml:"fall_factor"`   // Fall speed per tick is fall_factor / size
	WrapY        float64 `yaml:"wrap_y"`        // Where flakes reappear after leaving the bottom
	ClockRate    float64 `yaml:"clock_rate"`    // Ticks per second of the sway clock
}

// Audio defines sound output.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Exponent on base 2; 0 is unchanged, -1 is half
}
