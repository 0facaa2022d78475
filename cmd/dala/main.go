// dala is Run, Dala, Run!: a Dala horse runs over a snowy track, jumping meatballs and
// collecting plant balls and Christmas socks.
//
// Usage:
//
//	dala play     - Play in the terminal
//	dala window   - Play in a desktop window
//	dala serve    - Start SSH server for remote play
//	dala config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dala",
	Short: "Run, Dala, Run! - a snowy endless runner",
	Long: `Run, Dala, Run! is a small holiday runner. Press space to start, then jump
over the meatballs and collect plant balls (+10) and socks (+50).
Reach 240 points to win. The track speeds up as your score grows.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  dala play
  dala window --scale 2
  dala serve --ssh :2222
  dala config --config ./my-dala.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
