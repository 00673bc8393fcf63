package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wp4032/stocks/internal/data"
	"github.com/wp4032/stocks/internal/domain"
)

func TestCAGR_Formula(t *testing.T) {
	// doubling over exactly three years
	rate, ok := cagr(100, 200, 3.0)
	require.True(t, ok)
	assert.InDelta(t, 0.2599, rate, 1e-4)

	t.Run("non_positive_start", func(t *testing.T) {
		_, ok := cagr(0, 200, 3.0)
		assert.False(t, ok)
		_, ok = cagr(-5, 200, 3.0)
		assert.False(t, ok)
	})

	t.Run("non_positive_elapsed", func(t *testing.T) {
		_, ok := cagr(100, 200, 0)
		assert.False(t, ok)
	})
}

func TestGrowth_Compute(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	// first two bars are partial-window noise and must be skipped
	bars := barsFromCloses(now, 5, 6, 100, 150, 200)

	g := NewGrowth(&fakePrices{bars: map[string][]domain.PriceBar{"AAPL": bars}})
	g.Clock = func() time.Time { return now }

	v := g.Compute(context.Background(), "AAPL", 3)
	got, ok := v.Float()
	require.True(t, ok)

	elapsed := data.ElapsedYears(data.WindowStart(3, now), now)
	want, _ := cagr(100, 200, elapsed)
	assert.InDelta(t, want, got, 1e-9)
	assert.Equal(t, domain.Window3Y, v.Window)
}

func TestGrowth_Unavailable(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("provider_error", func(t *testing.T) {
		g := NewGrowth(&fakePrices{err: assert.AnError})
		assert.False(t, g.Compute(context.Background(), "X", 1).Available())
	})

	t.Run("too_few_bars", func(t *testing.T) {
		g := NewGrowth(&fakePrices{bars: map[string][]domain.PriceBar{"X": barsFromCloses(now, 100, 110)}})
		assert.False(t, g.Compute(context.Background(), "X", 1).Available())
	})

	t.Run("non_positive_start_price", func(t *testing.T) {
		g := NewGrowth(&fakePrices{bars: map[string][]domain.PriceBar{"X": barsFromCloses(now, 10, 10, 0, 110)}})
		g.Clock = func() time.Time { return now }
		assert.False(t, g.Compute(context.Background(), "X", 1).Available())
	})
}
