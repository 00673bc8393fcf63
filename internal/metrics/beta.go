package metrics

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/wp4032/stocks/internal/domain"
)

// Beta estimates market sensitivity: the OLS slope of the security's
// daily returns regressed on the benchmark index's daily returns over
// the same window.
type Beta struct {
	Prices    PriceSource
	Benchmark string
}

func NewBeta(prices PriceSource, benchmark string) *Beta {
	return &Beta{Prices: prices, Benchmark: benchmark}
}

func (b *Beta) Kind() domain.MetricKind { return domain.KindBeta }

func (b *Beta) Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue {
	window := domain.Window(years)

	secBars, err := b.Prices.PriceHistory(ctx, string(sec), years)
	if err != nil {
		log.Debug().Err(err).Str("symbol", string(sec)).Int("years", years).
			Msg("Beta: security price history unavailable")
		return domain.Unavailable(domain.KindBeta, window)
	}
	benchBars, err := b.Prices.PriceHistory(ctx, b.Benchmark, years)
	if err != nil {
		log.Debug().Err(err).Str("benchmark", b.Benchmark).Int("years", years).
			Msg("Beta: benchmark price history unavailable")
		return domain.Unavailable(domain.KindBeta, window)
	}

	secReturns := dailyReturns(secBars)
	benchReturns := dailyReturns(benchBars)

	// inner join by date; unmatched dates are dropped
	var market, stock []float64
	for _, bar := range benchBars {
		key := bar.Date.Format("2006-01-02")
		br, ok := benchReturns[key]
		if !ok {
			continue
		}
		sr, ok := secReturns[key]
		if !ok {
			continue
		}
		market = append(market, br)
		stock = append(stock, sr)
	}

	slope, ok := olsSlope(market, stock)
	if !ok {
		return domain.Unavailable(domain.KindBeta, window)
	}
	return domain.Value(domain.KindBeta, window, slope)
}

// dailyReturns maps each date to its close-over-close percentage
// return. Bars following a non-positive close produce no return.
func dailyReturns(bars []domain.PriceBar) map[string]float64 {
	returns := make(map[string]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev <= 0 {
			continue
		}
		returns[bars[i].Date.Format("2006-01-02")] = (bars[i].Close - prev) / prev
	}
	return returns
}
