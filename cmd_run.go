package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pairsim/batch"
	"pairsim/config"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run simulation batches across the configured board sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("trials") {
				cfg.Trials, _ = cmd.Flags().GetInt("trials")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			presets := cfg.Presets
			if board, _ := cmd.Flags().GetString("board"); board != "" {
				preset, ok := cfg.Preset(board)
				if !ok {
					return fmt.Errorf("unknown board preset %q", board)
				}
				presets = []config.BoardPreset{preset}
			}

			masterSeed := cfg.Seed
			if masterSeed == 0 {
				masterSeed = time.Now().UnixNano()
			}
			logger.Info("run starting",
				"tag", "cli",
				"presets", len(presets), "trials", cfg.Trials, "seed", masterSeed)

			// One derived seed per preset so adding or filtering presets does
			// not shift the seeds of the others in unexpected ways, while a
			// fixed master seed still reproduces the whole run.
			seedRng := rand.New(rand.NewSource(masterSeed))
			start := time.Now()
			for _, preset := range presets {
				stats, err := batch.Run(batch.RunSpec{
					Rows:    preset.Rows,
					Cols:    preset.Cols,
					Trials:  cfg.Trials,
					Seed:    seedRng.Int63(),
					Workers: cfg.Workers,
					Logger:  logger,
				})
				if err != nil {
					return fmt.Errorf("preset %q: %w", preset.Name, err)
				}
				fmt.Println()
				if err := stats.WriteReport(os.Stdout); err != nil {
					return err
				}
			}
			logger.Info("run finished", "tag", "cli", "elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().Int("trials", 0, "games per board size (overrides config)")
	cmd.Flags().Int64("seed", 0, "master random seed (0 = derive from clock)")
	cmd.Flags().Int("workers", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().String("board", "", "run a single preset by label (e.g. 4x4)")
	return cmd
}
