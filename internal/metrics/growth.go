package metrics

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wp4032/stocks/internal/data"
	"github.com/wp4032/stocks/internal/domain"
)

// Growth computes the compound annual growth rate of the security's
// price over the lookback window.
type Growth struct {
	Prices PriceSource
	Clock  func() time.Time
}

func NewGrowth(prices PriceSource) *Growth {
	return &Growth{Prices: prices, Clock: time.Now}
}

func (g *Growth) Kind() domain.MetricKind { return domain.KindGrowth }

func (g *Growth) Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue {
	window := domain.Window(years)

	bars, err := g.Prices.PriceHistory(ctx, string(sec), years)
	if err != nil {
		log.Debug().Err(err).Str("symbol", string(sec)).Int("years", years).
			Msg("Growth: price history unavailable")
		return domain.Unavailable(domain.KindGrowth, window)
	}
	// The first two bars of a window are skipped: the series can open
	// on a partial bar, so the third-earliest close is the start price.
	if len(bars) < 3 {
		return domain.Unavailable(domain.KindGrowth, window)
	}

	start := bars[2].Close
	end := bars[len(bars)-1].Close

	now := g.Clock()
	elapsed := data.ElapsedYears(data.WindowStart(years, now), now)

	rate, ok := cagr(start, end, elapsed)
	if !ok {
		return domain.Unavailable(domain.KindGrowth, window)
	}
	return domain.Value(domain.KindGrowth, window, rate)
}

// cagr is the pure growth-rate formula: (end/start)^(1/years) - 1.
// Not computable when the start price or the elapsed time is
// non-positive.
func cagr(start, end, years float64) (float64, bool) {
	if start <= 0 || years <= 0 {
		return 0, false
	}
	return math.Pow(end/start, 1/years) - 1, true
}
