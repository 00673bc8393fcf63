package metrics

import (
	"context"

	"github.com/wp4032/stocks/internal/domain"
)

// DebtEquity computes total debt over stockholders' equity, averaged
// over the window.
type DebtEquity struct {
	Fundamentals FundamentalsSource
}

func NewDebtEquity(src FundamentalsSource) *DebtEquity {
	return &DebtEquity{Fundamentals: src}
}

func (d *DebtEquity) Kind() domain.MetricKind { return domain.KindDebtEquity }

func (d *DebtEquity) Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue {
	return windowedAverage(ctx, d.Fundamentals, sec, domain.KindDebtEquity, years, debtEquityRatio)
}

func debtEquityRatio(snap domain.FundamentalSnapshot) (float64, bool) {
	if !snap.TotalDebt.Present || !snap.StockholdersEquity.Present {
		return 0, false
	}
	if snap.StockholdersEquity.Val == 0 {
		return 0, false
	}
	return snap.TotalDebt.Val / snap.StockholdersEquity.Val, true
}
