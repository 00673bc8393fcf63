package data

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wp4032/stocks/internal/telemetry"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000, 1704326400, 1704412800],
      "indicators": {
        "quote": [{
          "close": [100.0, null, 102.5, 101.0],
          "volume": [1000, null, 1500, 900]
        }]
      }
    }],
    "error": null
  }
}`

const quoteSummaryFixture = `{
  "quoteSummary": {
    "result": [{
      "incomeStatementHistory": {
        "incomeStatementHistory": [
          {"endDate": {"raw": 1719705600}, "totalRevenue": {"raw": 500}, "costOfRevenue": {"raw": 200}, "operatingIncome": {"raw": 120}},
          {"endDate": {"raw": 1688083200}, "totalRevenue": {"raw": 450}, "costOfRevenue": {"raw": 190}}
        ]
      },
      "balanceSheetHistory": {
        "balanceSheetStatements": [
          {"endDate": {"raw": 1719705600}, "totalAssets": {"raw": 1000}, "totalCurrentLiabilities": {"raw": 300}, "totalStockholderEquity": {"raw": 400}, "longTermDebt": {"raw": 150}, "shortLongTermDebt": {"raw": 50}},
          {"endDate": {"raw": 1688083200}, "totalAssets": {"raw": 900}, "totalCurrentLiabilities": {"raw": 280}, "totalStockholderEquity": {"raw": 350}}
        ]
      }
    }],
    "error": null
  }
}`

func newTestClient(t *testing.T, handler http.Handler, opts ...YahooOption) (*YahooClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	metrics := telemetry.NewRegistry(prometheus.NewRegistry())
	// pinned just after the fixture bars so windowing keeps them
	clock := func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }
	base := []YahooOption{WithBaseURL(srv.URL), WithClock(clock)}
	client := NewYahooClient(NewLimiter(0, 1), NewBreaker("test", DefaultBreakerConfig()), metrics, append(base, opts...)...)
	return client, srv
}

func TestYahooClient_PriceHistory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL"))
		assert.NotEmpty(t, r.URL.Query().Get("period1"))
		fmt.Fprint(w, chartFixture)
	}))

	bars, err := client.PriceHistory(context.Background(), "AAPL", 1)
	require.NoError(t, err)
	require.Len(t, bars, 3, "null bar must be dropped")
	assert.Equal(t, 100.0, bars[0].Close)
	assert.Equal(t, 101.0, bars[2].Close)
	assert.Equal(t, 1500.0, bars[1].Volume)
	assert.True(t, bars[0].Date.Before(bars[1].Date))
}

func TestYahooClient_Fundamentals(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/MSFT"))
		fmt.Fprint(w, quoteSummaryFixture)
	}))

	snaps, err := client.Fundamentals(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	// most-recent first
	latest, prior := snaps[0], snaps[1]
	assert.True(t, latest.PeriodEnd.After(prior.PeriodEnd))

	assert.Equal(t, 120.0, latest.OperatingIncome.Val)
	assert.True(t, latest.OperatingIncome.Present)
	assert.Equal(t, 200.0, latest.TotalDebt.Val, "short plus long term debt")

	// prior year has no operating income and no debt fields reported
	assert.False(t, prior.OperatingIncome.Present)
	assert.False(t, prior.TotalDebt.Present)
	assert.True(t, prior.TotalAssets.Present)
}

func TestYahooClient_ServerErrorSurfacesAsError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.PriceHistory(context.Background(), "FAIL", 1)
	assert.Error(t, err)
}

func TestYahooClient_CacheAvoidsSecondFetch(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, chartFixture)
	}), WithCache(NewMemoryCache(), time.Minute))

	_, err := client.PriceHistory(context.Background(), "AAPL", 5)
	require.NoError(t, err)
	_, err = client.PriceHistory(context.Background(), "AAPL", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second window request must be served from cache")
}

func TestYahooClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusBadGateway)
	}))

	for i := 0; i < 10; i++ {
		_, err := client.PriceHistory(context.Background(), "DOWN", 1)
		assert.Error(t, err)
	}
	assert.Less(t, calls, 10, "open breaker must fail fast without hitting the network")
}
