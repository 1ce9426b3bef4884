package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

const simSession = "sim"

var (
	flagTicks     int
	flagMaxRounds int
	flagQuiet     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <variant>",
	Short: "Run a headless match flown by an autopilot",
	Long: `Run a match without a terminal UI. An autopilot flies the player ship
through the same controls the keyboard uses, the enemy is flown by the
configured AI. Every finished round is printed and a summary follows.

Examples:
  spacewar sim classic
  spacewar sim gravity --ticks 36000 --seed 42
  spacewar sim lethal --rounds 10 --script ./hunter.lua --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 60*60*5, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagMaxRounds, "rounds", 0, "Stop after this many rounds (0 = use round.max_rounds)")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the summary")
}

func runSim(_ *cobra.Command, args []string) error {
	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'spacewar list' to see available arenas", variant)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig, variant)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	if flagScript != "" {
		cfg.AI.Script = flagScript
	}
	if flagMaxRounds > 0 {
		cfg.Round.MaxRounds = flagMaxRounds
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ledger, err := storage.Open()
	if err != nil {
		return err
	}
	defer ledger.Close()

	world, pilot := spacewar.NewWorld(cfg, seed, logger.WithPrefix(variant))
	if pilot != nil {
		defer pilot.Close()
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	world.SetAggression(difficulty.Aggression(0, 0))
	autopilot := spacewar.NewAutopilot()

	logger.Info("simulation started", "variant", variant, "seed", seed, "ticks", flagTicks)
	start := time.Now()

	rounds := 0
	for i := 0; i < flagTicks && !world.Over(); i++ {
		autopilot.Drive(world)
		res := world.Step()

		for _, r := range res.Rounds {
			rounds++
			summary := core.RoundSummary{
				Round:      r.Round,
				PlayerDead: r.PlayerDead,
				EnemyDead:  r.EnemyDead,
				Delta:      r.Delta,
				Score:      r.Score,
				Ticks:      r.Ticks,
			}
			if _, err := ledger.RecordRound(storage.RoundRecord{
				Session: simSession,
				Variant: variant,
				Round:   r.Round,
				Outcome: summary.Outcome(),
				Delta:   r.Delta,
				Score:   r.Score,
				Ticks:   r.Ticks,
			}); err != nil {
				return err
			}
			if !flagQuiet {
				fmt.Printf("round %3d  %-4s  %+d  score %3d  %6d ticks\n",
					r.Round, summary.Outcome(), r.Delta, r.Score, r.Ticks)
			}
		}
		if len(res.Rounds) > 0 {
			world.SetAggression(difficulty.Aggression(world.Round().Score, rounds))
		}
	}

	sum, err := ledger.Summary(simSession)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Arena:   %s (seed %d)\n", variant, seed)
	fmt.Printf("Ticks:   %d in %s\n", world.Tick(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Rounds:  %d  (won %d, lost %d, drawn %d)\n", sum.Rounds, sum.Wins, sum.Losses, sum.Draws)
	fmt.Printf("Score:   %+d\n", world.Round().Score)
	if sum.Rounds > 0 {
		fmt.Printf("Average: %.0f ticks per round\n", sum.AvgTicks)
	}
	return nil
}
