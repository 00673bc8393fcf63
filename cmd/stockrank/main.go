package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "stockrank"
	version = "v1.2.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Cross-sectional equity ratio screener",
		Version: version,
		Long: `stockrank computes windowed performance ratios (growth, ROCE, cost
margin, leverage, beta) for a list of tickers, blends each metric's
1/3/5-year values into a composite score, and writes a ranked
comparison table.`,
	}

	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to YAML config file")

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Run the ratio scan and write the ranked comparison table",
		RunE:  runRank,
	}
	rankCmd.Flags().String("input", "", "Ticker list CSV (overrides config)")
	rankCmd.Flags().String("column", "", "Ticker column name (overrides config)")
	rankCmd.Flags().Int("concurrency", 0, "Worker count (overrides config)")

	vpcCmd := &cobra.Command{
		Use:   "vpc",
		Short: "Run the volume-price-confirmation breakout screen",
		RunE:  runVPC,
	}
	vpcCmd.Flags().String("input", "", "Ticker list CSV (overrides config)")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(vpcCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
