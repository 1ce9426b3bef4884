// spacewar is a two-ship space combat arena for the terminal.
//
// Usage:
//
//	spacewar list                - List arena variants
//	spacewar play <variant>      - Play a variant
//	spacewar menu                - Pick variants interactively
//	spacewar sim <variant>       - Run a headless match with an autopilot
//	spacewar serve               - Start SSH server for remote play
//	spacewar config <variant>    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible matches
//	--config <path>      - Custom config file (.yaml or .toml)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--script <path>      - Lua pilot for the enemy ship
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar"
	"github.com/vovakirdan/tui-spacewar/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagScript     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacewar",
	Short: "Spacewar - two-ship space combat in your terminal",
	Long: `Spacewar pits your ship against an AI ship around a central star.
Destroy the enemy to score, lose your ship and the enemy scores.

Available commands:
  list     - Show all arena variants
  play     - Play a variant directly
  menu     - Interactive variant picker with round history
  sim      - Headless match flown by an autopilot
  serve    - Start SSH server for remote play
  config   - Print the effective configuration of a variant

Examples:
  spacewar list
  spacewar play gravity
  spacewar play classic --difficulty hard
  spacewar sim lethal --ticks 20000 --seed 7
  spacewar serve --ssh :2222
  spacewar config wrap --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagScript, "script", "", "Lua pilot script for the enemy ship")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play and menu log nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and hands them to the game packages.
func setup() error {
	switch config.DifficultyPreset(flagDifficulty) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	spacewar.SetConfigPath(flagConfig)
	spacewar.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	spacewar.SetScriptPath(flagScript)
	return nil
}

// newLogger builds the process logger and returns a func that closes its file.
// When the terminal is owned by the TUI and no log file is given, logs are discarded.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	case ownsTerminal:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacewar",
		Level:           level,
	})
	spacewar.SetLogger(logger)
	tui.SetLogger(logger)
	return logger, cleanup, nil
}
