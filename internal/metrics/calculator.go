// Package metrics contains the windowed ratio calculators. Each
// calculator turns provider data into one MetricValue per lookback
// window; anything it cannot compute comes back as an unavailable
// value, never as an error or a zero.
package metrics

import (
	"context"

	"github.com/wp4032/stocks/internal/domain"
)

// PriceSource supplies daily price history. *data.YahooClient
// implements it.
type PriceSource interface {
	PriceHistory(ctx context.Context, symbol string, years int) ([]domain.PriceBar, error)
}

// FundamentalsSource supplies annual statement snapshots, most-recent
// first. *data.YahooClient implements it.
type FundamentalsSource interface {
	Fundamentals(ctx context.Context, symbol string) ([]domain.FundamentalSnapshot, error)
}

// Calculator computes one metric kind at a lookback window. years == 0
// requests the trailing-twelve-month point value for the kinds that
// define one.
type Calculator interface {
	Kind() domain.MetricKind
	Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue
}

// windowedAverage implements the shared fundamentals policy: the
// arithmetic mean of the per-year ratio over up to `years` most recent
// fiscal periods, skipping years where the ratio cannot be computed.
// Unavailable only when every year in the window is unavailable.
// years == 0 takes the single most recent snapshot instead.
func windowedAverage(ctx context.Context, src FundamentalsSource, sec domain.Security, kind domain.MetricKind, years int, ratio func(domain.FundamentalSnapshot) (float64, bool)) domain.MetricValue {
	window := domain.Window(years)

	snaps, err := src.Fundamentals(ctx, string(sec))
	if err != nil || len(snaps) == 0 {
		return domain.Unavailable(kind, window)
	}

	if years == 0 {
		if v, ok := ratio(snaps[0]); ok {
			return domain.Value(kind, window, v)
		}
		return domain.Unavailable(kind, window)
	}

	n := years
	if n > len(snaps) {
		n = len(snaps)
	}

	var sum float64
	var count int
	for _, snap := range snaps[:n] {
		if v, ok := ratio(snap); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return domain.Unavailable(kind, window)
	}
	return domain.Value(kind, window, sum/float64(count))
}
