package metrics

import (
	"context"

	"github.com/wp4032/stocks/internal/domain"
)

// CostMargin computes cost of revenue over total revenue, averaged over
// the window. Lower is better; the value is reported, not scored.
type CostMargin struct {
	Fundamentals FundamentalsSource
}

func NewCostMargin(src FundamentalsSource) *CostMargin {
	return &CostMargin{Fundamentals: src}
}

func (m *CostMargin) Kind() domain.MetricKind { return domain.KindCostMargin }

func (m *CostMargin) Compute(ctx context.Context, sec domain.Security, years int) domain.MetricValue {
	return windowedAverage(ctx, m.Fundamentals, sec, domain.KindCostMargin, years, costMarginRatio)
}

func costMarginRatio(snap domain.FundamentalSnapshot) (float64, bool) {
	if !snap.CostOfRevenue.Present || !snap.TotalRevenue.Present {
		return 0, false
	}
	if snap.TotalRevenue.Val == 0 {
		return 0, false
	}
	return snap.CostOfRevenue.Val / snap.TotalRevenue.Val, true
}
