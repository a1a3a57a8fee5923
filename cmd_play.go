package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pairsim/loghandler"
	"pairsim/sim"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one fully narrated game",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			cols, _ := cmd.Flags().GetInt("cols")
			seed, _ := cmd.Flags().GetInt64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			// A single game is always narrated turn by turn.
			logger := slog.New(loghandler.NewCompactHandler(os.Stderr, slog.LevelDebug))
			slog.SetDefault(logger)

			engine, err := sim.New(rows, cols, sim.WithSeed(seed), sim.WithLogger(logger))
			if err != nil {
				return err
			}
			result := engine.Play()

			fmt.Printf("\n%dx%d game (seed %d)\n", result.Rows, result.Cols, seed)
			fmt.Printf("  wrong moves:       %d\n", result.Moves)
			fmt.Printf("  perfect matches:   %d\n", result.PerfectMatches)
			fmt.Printf("  lucky matches:     %d\n", result.LuckyMatches)
			fmt.Printf("  exploratory moves: %d\n", result.ExploratoryMoves)
			fmt.Printf("  total turns:       %d\n", result.Turns)
			if !result.Completed {
				fmt.Println("  WARNING: game stopped by the defensive turn cap")
			}
			return nil
		},
	}

	cmd.Flags().Int("rows", 4, "board rows")
	cmd.Flags().Int("cols", 4, "board columns")
	cmd.Flags().Int64("seed", 0, "random seed (0 = derive from clock)")
	return cmd
}
