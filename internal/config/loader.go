package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file
// when no explicit path is given.
const EnvConfigPath = "DALA_CONFIG"

// SourceEmbedded and SourceBuiltin describe configs that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> $DALA_CONFIG -> ~/.dala/configs/dala.yaml -> ./configs/dala.yaml -> embedded default.
// An explicitly requested file must exist and parse; the implicit locations are skipped on error.
func Load(customPath string) (Config, string, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("dala.yaml"), filepath.Join("configs", "dala.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dala", "configs", filename)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a session.
// Ranges may be zero-width (fixed spacing) but never inverted.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Physics.Floor > 0 && c.Physics.Floor <= 1, "physics.floor must be in (0, 1], got %v", c.Physics.Floor)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must point up (negative), got %v", c.Physics.JumpImpulse)
	check(c.Physics.KnockImpulse < 0, "physics.knock_impulse must point up (negative), got %v", c.Physics.KnockImpulse)
	check(c.Scroll.PerScore > 0, "scroll.per_score must be positive, got %v", c.Scroll.PerScore)
	check(c.Scroll.Step > 0, "scroll.step must be positive, got %v", c.Scroll.Step)
	check(c.Player.AnimationGap > 0, "player.animation_gap must be positive, got %d", c.Player.AnimationGap)
	check(validRange(c.Obstacles.Spacing) && c.Obstacles.Spacing.Min > 0, "obstacles.spacing must satisfy 0 < min <= max, got %+v", c.Obstacles.Spacing)
	check(c.Obstacles.Weights.Hazard >= 0 && c.Obstacles.Weights.Minor >= 0 && c.Obstacles.Weights.Major >= 0,
		"obstacles.weights must not be negative, got %+v", c.Obstacles.Weights)
	check(c.Obstacles.Weights.Total() > 0, "obstacles.weights must not all be zero")
	check(c.Scoring.MinorPoints >= 0 && c.Scoring.MajorPoints >= 0, "scoring points must not be negative")
	check(c.Scoring.WinScore > 0, "scoring.win_score must be positive, got %d", c.Scoring.WinScore)
	check(len(c.Background.Layers) > 0, "background needs at least one layer")
	for i, l := range c.Background.Layers {
		check(validRange(l.Spacing) && l.Spacing.Min > 0, "background.layers[%d] (%s) spacing must satisfy 0 < min <= max, got %+v", i, l.Name, l.Spacing)
		check(l.Jitter >= 0, "background.layers[%d] (%s) jitter must not be negative", i, l.Name)
	}
	check(c.Snow.Count >= 0, "snow.count must not be negative, got %d", c.Snow.Count)
	check(validRange(c.Snow.Size) && c.Snow.Size.Min > 0, "snow.size must satisfy 0 < min <= max, got %+v", c.Snow.Size)
	check(c.Snow.ClockRate > 0, "snow.clock_rate must be positive, got %v", c.Snow.ClockRate)

	return errors.Join(errs...)
}

func validRange(r Range) bool {
	return r.Min <= r.Max
}
