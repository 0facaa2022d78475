package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dala-run/internal/core"
	"github.com/vovakirdan/dala-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent run. Sessions share nothing and
play without sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dala/host_key

Examples:
  dala serve                           # Listen on :23234 with auto-generated key
  dala serve --ssh :2222               # Listen on port 2222
  dala serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, catalog, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.CanvasW = cfg.Canvas.Width
	srvCfg.CanvasH = cfg.Canvas.Height
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		srvCfg.TickRate = flagFPS
	}

	newGame := func(user string, rt core.RuntimeConfig) tui.Game {
		if flagSeed != 0 {
			rt.Seed = flagSeed
		}
		// No speaker on the server: sessions get the default silent audio.
		return newSession(cfg, catalog, rt, nil, logger.With("user", user))
	}

	server, err := tui.NewSSHServer(srvCfg, newGame, catalog, logger.WithPrefix("ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Run, Dala, Run! SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
