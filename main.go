package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pairsim/config"
	"pairsim/loghandler"
)

var version = "0.1.0"

func main() {
	// Missing .env is the normal case; configuration falls back to defaults,
	// pairsim.yaml and plain environment variables.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "pairsim",
		Short: "Concentration ideal-player simulator",
		Long: `pairsim simulates an optimal-memory player for the matching-pairs
("Concentration") card game and reports how many wrong guesses such a player
makes before clearing the board, aggregated over many shuffled deals.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file path (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "emit per-turn narrative")

	rootCmd.AddCommand(
		newRunCmd(),
		newPlayCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pairsim version %s\n", version)
		},
	}
}

// setup loads configuration honoring the persistent flags and installs the
// compact logger as the process default.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}

	level := loghandler.ParseLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(loghandler.NewCompactHandler(os.Stderr, level))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
