package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dala-run/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The 700x400 game canvas is scaled to the
terminal size.

Controls:
  Space/Up/W - Start, then jump
  Ctrl+S     - Save a screenshot to ~/.dala/screenshots
  Q/Esc      - Quit

A run ends on the game over or win screen; quit and start again for a new run.

Examples:
  dala play
  dala play --seed 42
  dala play --log-file dala.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game; keep logs out of it.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, catalog, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rt := runtimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	sound := openAudio(cfg, logger)
	defer sound.Close()

	session := newSession(cfg, catalog, rt, sound, logger)

	if err := tui.Run(session, catalog, cfg.Canvas.Width, cfg.Canvas.Height, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := session.State()
	logger.Info("run finished", "screen", st.Screen, "score", st.Score, "ticks", st.Ticks)
	return nil
}
