package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/platform/tui"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play an arena variant",
	Long: `Start a match on the specified arena.

Controls:
  A/Left, D/Right  - Turn
  W/Up             - Thrust
  Space/F          - Fire
  P                - Pause
  B/Esc            - Leave (while paused or after the match)
  R                - Restart (after the last round)
  Ctrl+S           - Screenshot to ~/.spacewar/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Enemy starts calm, longer pause between rounds
  normal - Enemy starts at 30% aggression growth
  hard   - Enemy starts at 70% and turns faster
  fixed  - No progression

Examples:
  spacewar play classic
  spacewar play gravity --difficulty hard
  spacewar play lethal --script ./hunter.lua --log-file spacewar.log
  spacewar play wrap --config ./my-spacewar.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'spacewar list' to see available arenas", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("round ledger unavailable", "err", err)
		ledger = nil
	}
	if ledger != nil {
		defer ledger.Close()
	}

	if _, err := tui.Run(game, ledger, "local", runtimeConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
