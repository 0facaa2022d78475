package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	builtin := DefaultConfig()
	if cfg.Physics != builtin.Physics {
		t.Errorf("physics differ: embedded %+v, builtin %+v", cfg.Physics, builtin.Physics)
	}
	if cfg.Scroll != builtin.Scroll {
		t.Errorf("scroll differ: embedded %+v, builtin %+v", cfg.Scroll, builtin.Scroll)
	}
	if cfg.Obstacles != builtin.Obstacles {
		t.Errorf("obstacles differ: embedded %+v, builtin %+v", cfg.Obstacles, builtin.Obstacles)
	}
	if cfg.Scoring != builtin.Scoring {
		t.Errorf("scoring differ: embedded %+v, builtin %+v", cfg.Scoring, builtin.Scoring)
	}
	if cfg.Snow != builtin.Snow {
		t.Errorf("snow differ: embedded %+v, builtin %+v", cfg.Snow, builtin.Snow)
	}
	if len(cfg.Background.Layers) != len(builtin.Background.Layers) {
		t.Fatalf("layer count = %d, expected %d", len(cfg.Background.Layers), len(builtin.Background.Layers))
	}
	for i := range cfg.Background.Layers {
		if cfg.Background.Layers[i] != builtin.Background.Layers[i] {
			t.Errorf("layer %d differs: embedded %+v, builtin %+v", i, cfg.Background.Layers[i], builtin.Background.Layers[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dala.yaml")
	doc := "scoring:\n  win_score: 500\nphysics:\n  gravity: 0.6\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Scoring.WinScore != 500 {
		t.Errorf("WinScore = %d, expected 500", cfg.Scoring.WinScore)
	}
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Gravity = %v, expected 0.6", cfg.Physics.Gravity)
	}
	// Keys not in the file keep their defaults
	if cfg.Scoring.MinorPoints != 10 {
		t.Errorf("MinorPoints = %d, expected default 10", cfg.Scoring.MinorPoints)
	}
}

func TestLoadEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(path, []byte("scroll:\n  base_speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path || cfg.Scroll.BaseSpeed != 9 {
		t.Errorf("Load() = (base %v, %q), expected (9, %q)", cfg.Scroll.BaseSpeed, source, path)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing explicit file should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Chdir(t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Scoring.WinScore != 240 {
		t.Errorf("WinScore = %d, expected 240", cfg.Scoring.WinScore)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"fixed spacing is allowed", func(c *Config) { c.Obstacles.Spacing = Range{Min: 300, Max: 300} }, ""},
		{"inverted spacing", func(c *Config) { c.Obstacles.Spacing = Range{Min: 500, Max: 100} }, "obstacles.spacing"},
		{"zero weights", func(c *Config) { c.Obstacles.Weights = Weights{} }, "weights"},
		{"no layers", func(c *Config) { c.Background.Layers = nil }, "at least one layer"},
		{"bad layer", func(c *Config) { c.Background.Layers[1].Spacing = Range{Min: 10, Max: 5} }, "layers[1] (trees)"},
		{"downward jump", func(c *Config) { c.Physics.JumpImpulse = 10 }, "jump_impulse"},
		{"downward knock", func(c *Config) { c.Physics.KnockImpulse = 0 }, "knock_impulse"},
		{"empty canvas", func(c *Config) { c.Canvas.Width = 0 }, "canvas"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTripKeepsWinScore(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "win_score: 240") {
		t.Errorf("marshalled config should contain win_score, got:\n%s", data)
	}
}
