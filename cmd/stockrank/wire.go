package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wp4032/stocks/internal/config"
	"github.com/wp4032/stocks/internal/data"
	"github.com/wp4032/stocks/internal/metrics"
	"github.com/wp4032/stocks/internal/telemetry"
)

// loadConfig reads the config file named by the persistent flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildProvider assembles the Yahoo client with limiter, breaker,
// cache, and telemetry from config. The returned registry is shared
// with the scanner.
func buildProvider(cfg *config.Config) (*data.YahooClient, *telemetry.Registry) {
	reg := telemetry.NewRegistry(prometheus.DefaultRegisterer)

	var cache data.Cache
	if cfg.Cache.RedisAddr != "" {
		cache = data.NewRedisCache(data.DialRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB), "stockrank:")
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis provider cache")
	} else {
		cache = data.NewMemoryCache()
	}

	opts := []data.YahooOption{
		data.WithCache(cache, time.Duration(cfg.Cache.TTLSeconds)*time.Second),
		data.WithCallTimeout(time.Duration(cfg.Provider.TimeoutSeconds) * time.Second),
	}
	if cfg.Provider.BaseURL != "" {
		opts = append(opts, data.WithBaseURL(cfg.Provider.BaseURL))
	}

	client := data.NewYahooClient(
		data.NewLimiter(cfg.Provider.RateLimitRPS, cfg.Provider.RateLimitBurst),
		data.NewBreaker("yahoo", data.DefaultBreakerConfig()),
		reg,
		opts...,
	)
	return client, reg
}

// buildCalculators wires the five ratio calculators to the provider.
func buildCalculators(provider *data.YahooClient, benchmark string) []metrics.Calculator {
	return []metrics.Calculator{
		metrics.NewGrowth(provider),
		metrics.NewROCE(provider),
		metrics.NewCostMargin(provider),
		metrics.NewDebtEquity(provider),
		metrics.NewBeta(provider, benchmark),
	}
}
