package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/audio"
	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
	"github.com/vovakirdan/dala-run/internal/games/dala"
)

// newLogger builds the command logger. Logs go to --log-file when set, otherwise to
// fallback. The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dala",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game configuration and the matching asset catalog.
func loadConfig(logger *log.Logger) (config.Config, *assets.Catalog, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("config loaded", "source", source)

	catalog := assets.Default(cfg.Canvas.Width, cfg.Canvas.Height)
	if err := catalog.ForLayers(cfg.Background.Layers); err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

// openAudio opens the speaker unless muted. A missing audio device is not fatal:
// the manager keeps working silently.
func openAudio(cfg config.Config, logger *log.Logger) *audio.Manager {
	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}

	m := audio.NewManager(logger.WithPrefix("audio"), audioCfg)
	if err := m.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return m
}

// runtimeConfig applies the global flags to the default runtime config.
// Callers set the display size.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// newSession creates a game session wired to the given audio and logger.
func newSession(cfg config.Config, catalog *assets.Catalog, rt core.RuntimeConfig, a dala.Audio, logger *log.Logger) *dala.Session {
	return dala.New(cfg, catalog, rt,
		dala.WithAudio(a),
		dala.WithLogger(logger.WithPrefix("session")),
	)
}
