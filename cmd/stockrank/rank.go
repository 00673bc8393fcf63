package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wp4032/stocks/internal/artifacts"
	"github.com/wp4032/stocks/internal/pipeline"
)

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Input.Path = v
	}
	if v, _ := cmd.Flags().GetString("column"); v != "" {
		cfg.Input.TickerColumn = v
	}
	if v, _ := cmd.Flags().GetInt("concurrency"); v > 0 {
		cfg.Scan.Concurrency = v
	}

	securities, err := artifacts.ReadTickers(cfg.Input.Path, cfg.Input.TickerColumn)
	if err != nil {
		return err
	}
	if len(securities) == 0 {
		return fmt.Errorf("ticker list %s has no tickers", cfg.Input.Path)
	}

	log.Info().
		Str("input", cfg.Input.Path).
		Str("benchmark", cfg.Provider.Benchmark).
		Int("tickers", len(securities)).
		Msg("Starting ratio scan")

	provider, reg := buildProvider(cfg)
	evaluator := pipeline.NewEvaluator(buildCalculators(provider, cfg.Provider.Benchmark), reg)
	scanner := pipeline.NewScanner(evaluator, cfg.Scan.Concurrency, reg)

	table := scanner.Scan(context.Background(), securities)

	path, err := artifacts.WriteReport(cfg.Output.Dir, table, time.Now())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("Scanned %d securities\n", len(table))
	fmt.Printf("Report written to %s\n", path)
	return nil
}
