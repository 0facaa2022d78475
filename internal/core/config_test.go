package core

import "testing"

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 (time-based)", cfg.Seed)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("screen = %dx%d, expected a positive fallback size", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestScreenState(t *testing.T) {
	tests := []struct {
		screen   ScreenState
		name     string
		terminal bool
	}{
		{ScreenStart, "start", false},
		{ScreenPlaying, "playing", false},
		{ScreenGameOver, "game-over", true},
		{ScreenWin, "win", true},
		{ScreenState(42), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.screen.String(); got != tt.name {
			t.Errorf("String() = %q, expected %q", got, tt.name)
		}
		if got := tt.screen.Terminal(); got != tt.terminal {
			t.Errorf("%s: Terminal() = %v, expected %v", tt.name, got, tt.terminal)
		}
	}
}
