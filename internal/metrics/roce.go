package metrics

import (
	"context"

	"github.com/wp4032/stocks/internal/domain"
)

// ROCE computes return on capital employed: operating income over
// (total assets - current liabilities), averaged over the window.
type ROCE struct {
	Fundamentals FundamentalsSource
}

func NewROCE(src FundamentalsSource) *ROCE {
	return &ROCE{Fundamentals: src}
}

func (r *ROCE) Kind() domain.MetricKind { return domain.KindROCE }

func (r *ROCE) Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue {
	return windowedAverage(ctx, r.Fundamentals, sec, domain.KindROCE, years, roceRatio)
}

func roceRatio(snap domain.FundamentalSnapshot) (float64, bool) {
	if !snap.OperatingIncome.Present || !snap.TotalAssets.Present || !snap.CurrentLiabilities.Present {
		return 0, false
	}
	capitalEmployed := snap.TotalAssets.Val - snap.CurrentLiabilities.Val
	if capitalEmployed == 0 {
		return 0, false
	}
	return snap.OperatingIncome.Val / capitalEmployed, true
}
