package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match of the variant would use, after the
variant preset, any config file and the difficulty preset are applied.
The output is a valid config file, so it can be saved and edited.

Examples:
  spacewar config
  spacewar config gravity > ~/.spacewar/configs/spacewar.yaml
  spacewar config lethal --format toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := config.Load(flagConfig, variant)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	if flagScript != "" {
		cfg.AI.Script = flagScript
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
