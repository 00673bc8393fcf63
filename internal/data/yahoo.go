package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/wp4032/stocks/internal/domain"
	"github.com/wp4032/stocks/internal/telemetry"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient implements Provider against the Yahoo Finance public
// chart and quoteSummary APIs. All outbound calls go through the rate
// limiter, the circuit breaker, and a per-call timeout; responses are
// cached so the four growth windows of one symbol cost one request.
type YahooClient struct {
	httpClient  *http.Client
	baseURL     string
	limiter     *Limiter
	breaker     *gobreaker.CircuitBreaker
	cache       Cache
	cacheTTL    time.Duration
	callTimeout time.Duration
	metrics     *telemetry.Registry
	now         func() time.Time
}

// YahooOption customizes a YahooClient.
type YahooOption func(*YahooClient)

// WithBaseURL points the client at a different host (tests use an
// httptest server).
func WithBaseURL(u string) YahooOption {
	return func(c *YahooClient) { c.baseURL = u }
}

// WithCache installs a response cache with the given TTL.
func WithCache(cache Cache, ttl time.Duration) YahooOption {
	return func(c *YahooClient) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithCallTimeout bounds each provider call.
func WithCallTimeout(d time.Duration) YahooOption {
	return func(c *YahooClient) { c.callTimeout = d }
}

// WithClock overrides the clock (tests pin "now").
func WithClock(now func() time.Time) YahooOption {
	return func(c *YahooClient) { c.now = now }
}

// NewYahooClient builds the provider adapter.
func NewYahooClient(limiter *Limiter, breaker *gobreaker.CircuitBreaker, metrics *telemetry.Registry, opts ...YahooOption) *YahooClient {
	c := &YahooClient{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     defaultBaseURL,
		limiter:     limiter,
		breaker:     breaker,
		cacheTTL:    15 * time.Minute,
		callTimeout: 20 * time.Second,
		metrics:     metrics,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// yahooChart mirrors the chart API response shape. Pointer slices keep
// null entries (holidays, halts) distinguishable from real zeros.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// PriceHistory fetches daily bars spanning the lookback window ending
// now, ascending by date.
func (c *YahooClient) PriceHistory(ctx context.Context, symbol string, years int) ([]domain.PriceBar, error) {
	cacheKey := fmt.Sprintf("chart:%s:%d", symbol, years)
	if bars, ok := cachedJSON[[]domain.PriceBar](ctx, c, cacheKey); ok {
		return bars, nil
	}

	now := c.now()
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL, url.PathEscape(symbol), WindowStart(years, now).Unix(), now.Unix())

	body, err := c.fetch(ctx, "chart", endpoint)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo chart decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart api: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]domain.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bar
		}
		bar := domain.PriceBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	bars = Window(bars, years, now)

	c.storeJSON(ctx, cacheKey, bars)
	return bars, nil
}

// rawValue is Yahoo's {raw, fmt} number wrapper; absent fields decode
// to a nil Raw.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (v rawValue) lineItem() domain.LineItem {
	if v.Raw == nil {
		return domain.LineItem{}
	}
	return domain.Item(*v.Raw)
}

type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			IncomeStatementHistory struct {
				IncomeStatementHistory []struct {
					EndDate         rawValue `json:"endDate"`
					TotalRevenue    rawValue `json:"totalRevenue"`
					CostOfRevenue   rawValue `json:"costOfRevenue"`
					OperatingIncome rawValue `json:"operatingIncome"`
				} `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			BalanceSheetHistory struct {
				BalanceSheetStatements []struct {
					EndDate                 rawValue `json:"endDate"`
					TotalAssets             rawValue `json:"totalAssets"`
					TotalCurrentLiabilities rawValue `json:"totalCurrentLiabilities"`
					TotalStockholderEquity  rawValue `json:"totalStockholderEquity"`
					ShortLongTermDebt       rawValue `json:"shortLongTermDebt"`
					LongTermDebt            rawValue `json:"longTermDebt"`
				} `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Fundamentals fetches annual income-statement and balance-sheet line
// items, merged by fiscal year, most-recent first.
func (c *YahooClient) Fundamentals(ctx context.Context, symbol string) ([]domain.FundamentalSnapshot, error) {
	cacheKey := "fundamentals:" + symbol
	if snaps, ok := cachedJSON[[]domain.FundamentalSnapshot](ctx, c, cacheKey); ok {
		return snaps, nil
	}

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=incomeStatementHistory,balanceSheetHistory",
		c.baseURL, url.PathEscape(symbol))

	body, err := c.fetch(ctx, "fundamentals", endpoint)
	if err != nil {
		return nil, err
	}

	var summary yahooQuoteSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo quoteSummary decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo quoteSummary api: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, nil
	}

	result := summary.QuoteSummary.Result[0]
	byYear := make(map[int]*domain.FundamentalSnapshot)

	snapshotFor := func(end rawValue) *domain.FundamentalSnapshot {
		if end.Raw == nil {
			return nil
		}
		periodEnd := time.Unix(int64(*end.Raw), 0).UTC()
		year := periodEnd.Year()
		snap, ok := byYear[year]
		if !ok {
			snap = &domain.FundamentalSnapshot{PeriodEnd: periodEnd}
			byYear[year] = snap
		}
		return snap
	}

	for _, stmt := range result.IncomeStatementHistory.IncomeStatementHistory {
		snap := snapshotFor(stmt.EndDate)
		if snap == nil {
			continue
		}
		snap.OperatingIncome = stmt.OperatingIncome.lineItem()
		snap.TotalRevenue = stmt.TotalRevenue.lineItem()
		snap.CostOfRevenue = stmt.CostOfRevenue.lineItem()
	}
	for _, stmt := range result.BalanceSheetHistory.BalanceSheetStatements {
		snap := snapshotFor(stmt.EndDate)
		if snap == nil {
			continue
		}
		snap.TotalAssets = stmt.TotalAssets.lineItem()
		snap.CurrentLiabilities = stmt.TotalCurrentLiabilities.lineItem()
		snap.StockholdersEquity = stmt.TotalStockholderEquity.lineItem()
		snap.TotalDebt = totalDebt(stmt.ShortLongTermDebt, stmt.LongTermDebt)
	}

	snaps := make([]domain.FundamentalSnapshot, 0, len(byYear))
	for _, snap := range byYear {
		snaps = append(snaps, *snap)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].PeriodEnd.After(snaps[j].PeriodEnd) })

	c.storeJSON(ctx, cacheKey, snaps)
	return snaps, nil
}

// totalDebt sums short- and long-term debt; missing if neither side is
// reported.
func totalDebt(short, long rawValue) domain.LineItem {
	if short.Raw == nil && long.Raw == nil {
		return domain.LineItem{}
	}
	var sum float64
	if short.Raw != nil {
		sum += *short.Raw
	}
	if long.Raw != nil {
		sum += *long.Raw
	}
	return domain.Item(sum)
}

// fetch runs one provider HTTP call through limiter, breaker, and the
// per-call timeout.
func (c *YahooClient) fetch(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("yahoo %s: %w", endpoint, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("yahoo %s read body: %w", endpoint, err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("yahoo %s: status %d", endpoint, resp.StatusCode)
		}
		return data, nil
	})

	if c.metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		c.metrics.ProviderRequests.WithLabelValues(endpoint, result).Inc()
	}
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// cachedJSON looks up and decodes a cached response.
func cachedJSON[T any](ctx context.Context, c *YahooClient, key string) (T, bool) {
	var out T
	if c.cache == nil {
		return out, false
	}
	raw, ok := c.cache.Get(ctx, key)
	if !ok {
		if c.metrics != nil {
			c.metrics.CacheMisses.Inc()
		}
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
		return out, false
	}
	if c.metrics != nil {
		c.metrics.CacheHits.Inc()
	}
	return out, true
}

func (c *YahooClient) storeJSON(ctx context.Context, key string, v interface{}) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.cache.Set(ctx, key, raw, c.cacheTTL)
}
