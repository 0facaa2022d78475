package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 || cfg.CanvasW != 700 || cfg.CanvasH != 400 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	newGame := func(string, core.RuntimeConfig) Game { return &stubGame{} }
	srv, err := NewSSHServer(cfg, newGame, assets.Default(700, 400), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}
