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

func runVPC(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Input.Path = v
	}

	securities, err := artifacts.ReadTickers(cfg.Input.Path, cfg.Input.TickerColumn)
	if err != nil {
		return err
	}

	log.Info().
		Str("input", cfg.Input.Path).
		Int("tickers", len(securities)).
		Msg("Starting VPC screen")

	provider, _ := buildProvider(cfg)
	rows := pipeline.NewVPCScreen(provider).Run(context.Background(), securities)

	path, err := artifacts.WriteVPCReport(cfg.Output.Dir, rows, time.Now())
	if err != nil {
		return fmt.Errorf("write VPC report: %w", err)
	}

	fmt.Printf("Screened %d securities, %d with enough history\n", len(securities), len(rows))
	fmt.Printf("Report written to %s\n", path)
	return nil
}
