package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dala-run/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with as YAML, after applying
the search order:

  --config <path> -> $DALA_CONFIG -> ~/.dala/configs/dala.yaml
  -> ./configs/dala.yaml -> built-in defaults

Use the output as a starting point for your own config file.

Examples:
  dala config > ~/.dala/configs/dala.yaml
  dala config --defaults
  dala config --config ./my-dala.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
