package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dala-run/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at its native 700x400 resolution,
optionally scaled up.

Controls:
  Space/Up/W - Start, then jump
  Q/Esc      - Quit

Examples:
  dala window
  dala window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 700x400 canvas")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, catalog, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rt := runtimeConfig()
	rt.ScreenW = int(cfg.Canvas.Width * flagScale)
	rt.ScreenH = int(cfg.Canvas.Height * flagScale)

	sound := openAudio(cfg, logger)
	defer sound.Close()

	session := newSession(cfg, catalog, rt, sound, logger)

	err = window.Run(session, catalog, cfg.Canvas.Width, cfg.Canvas.Height, window.Options{
		Scale:    flagScale,
		TickRate: rt.TickRate,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := session.State()
	logger.Info("run finished", "screen", st.Screen, "score", st.Score, "ticks", st.Ticks)
	return nil
}
