package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wp4032/stocks/internal/domain"
	"github.com/wp4032/stocks/internal/telemetry"
)

// Scanner fans the security list out over a bounded worker pool, joins
// the per-security records, and ranks the table. Workers share nothing
// but the provider client, so completion order is irrelevant: records
// land at their input index and only the ranking step reorders them.
type Scanner struct {
	evaluator   *Evaluator
	concurrency int
	telemetry   *telemetry.Registry
}

func NewScanner(evaluator *Evaluator, concurrency int, reg *telemetry.Registry) *Scanner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scanner{evaluator: evaluator, concurrency: concurrency, telemetry: reg}
}

// Scan evaluates every security and returns the ranked table. There is
// no fatal path: a security whose provider calls all fail still gets a
// record, with every cell unavailable.
func (s *Scanner) Scan(ctx context.Context, securities []domain.Security) domain.ResultTable {
	runID := uuid.NewString()
	started := time.Now()

	workers := s.concurrency
	if workers > len(securities) {
		workers = len(securities)
	}
	log.Info().
		Str("run_id", runID).
		Int("securities", len(securities)).
		Int("workers", workers).
		Msg("Starting cross-sectional scan")

	table := make(domain.ResultTable, len(securities))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				sec := securities[idx]
				log.Info().Str("run_id", runID).Str("symbol", string(sec)).Msg("Fetching data")
				table[idx] = s.evaluator.Evaluate(ctx, sec)
				if s.telemetry != nil {
					s.telemetry.SecuritiesScanned.Inc()
				}
			}
		}()
	}
	for idx := range securities {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	domain.Rank(table)

	elapsed := time.Since(started)
	if s.telemetry != nil {
		s.telemetry.ScanDuration.Observe(elapsed.Seconds())
	}
	log.Info().
		Str("run_id", runID).
		Dur("elapsed", elapsed).
		Int("records", len(table)).
		Msg("Scan completed")
	return table
}
