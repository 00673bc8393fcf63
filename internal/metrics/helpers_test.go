package metrics

import (
	"context"
	"time"

	"github.com/wp4032/stocks/internal/domain"
)

type fakePrices struct {
	bars map[string][]domain.PriceBar
	err  error
}

func (f *fakePrices) PriceHistory(_ context.Context, symbol string, _ int) ([]domain.PriceBar, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bars[symbol], nil
}

type fakeFundamentals struct {
	snaps []domain.FundamentalSnapshot
	err   error
}

func (f *fakeFundamentals) Fundamentals(_ context.Context, _ string) ([]domain.FundamentalSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snaps, nil
}

// barsFromCloses builds consecutive daily bars ending at end.
func barsFromCloses(end time.Time, closes ...float64) []domain.PriceBar {
	bars := make([]domain.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = domain.PriceBar{
			Date:  end.AddDate(0, 0, i-len(closes)+1),
			Close: c,
		}
	}
	return bars
}

// snapshotROCE builds a snapshot whose ROCE ratio is exactly v
// (operating income v over capital employed 1).
func snapshotROCE(v float64) domain.FundamentalSnapshot {
	return domain.FundamentalSnapshot{
		OperatingIncome:    domain.Item(v),
		TotalAssets:        domain.Item(2),
		CurrentLiabilities: domain.Item(1),
	}
}
