package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/platform/tui"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an arena and Tab
to see the rounds played in this run. Leaving a match returns to the
menu. Round history lives in memory and is gone when you quit.

Examples:
  spacewar menu
  spacewar menu --fps 30 --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("round ledger unavailable", "err", err)
		ledger = nil
	}
	if ledger != nil {
		defer ledger.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsHistory) {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(ledger, "local", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		// Fresh seed for each match unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, ledger, "local", cfg)
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
