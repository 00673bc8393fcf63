package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wp4032/stocks/internal/domain"
)

func TestROCE_MeanOfAvailableYears(t *testing.T) {
	src := &fakeFundamentals{snaps: []domain.FundamentalSnapshot{
		snapshotROCE(0.10),
		{}, // no line items at all: year excluded from the mean
		snapshotROCE(0.20),
	}}

	v := NewROCE(src).Compute(context.Background(), "AAPL", 3)
	got, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.15, got, 1e-9, "mean of available years, not of all years")
}

func TestROCE_ShorterHistoryThanWindow(t *testing.T) {
	src := &fakeFundamentals{snaps: []domain.FundamentalSnapshot{snapshotROCE(0.30)}}

	v := NewROCE(src).Compute(context.Background(), "AAPL", 5)
	got, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.30, got, 1e-9)
}

func TestROCE_TTMUsesOnlyLatestSnapshot(t *testing.T) {
	src := &fakeFundamentals{snaps: []domain.FundamentalSnapshot{
		snapshotROCE(0.40),
		snapshotROCE(0.10),
	}}

	v := NewROCE(src).Compute(context.Background(), "AAPL", 0)
	got, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.40, got, 1e-9)
	assert.Equal(t, domain.WindowTTM, v.Window)
}

func TestROCE_Unavailable(t *testing.T) {
	zeroCapital := domain.FundamentalSnapshot{
		OperatingIncome:    domain.Item(10),
		TotalAssets:        domain.Item(100),
		CurrentLiabilities: domain.Item(100),
	}

	cases := map[string]*fakeFundamentals{
		"provider_error":    {err: assert.AnError},
		"no_history":        {},
		"all_years_missing": {snaps: []domain.FundamentalSnapshot{{}, {}}},
		"zero_capital":      {snaps: []domain.FundamentalSnapshot{zeroCapital}},
		"missing_liabilities": {snaps: []domain.FundamentalSnapshot{{
			OperatingIncome: domain.Item(10),
			TotalAssets:     domain.Item(100),
		}}},
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			v := NewROCE(src).Compute(context.Background(), "AAPL", 3)
			assert.False(t, v.Available())
		})
	}
}
