package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		Path         string `yaml:"path"`
		TickerColumn string `yaml:"ticker_column"`
	} `yaml:"input"`
	Provider struct {
		BaseURL        string  `yaml:"base_url"`
		Benchmark      string  `yaml:"benchmark"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	} `yaml:"provider"`
	Cache struct {
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
		TTLSeconds    int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Scan struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"scan"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Input.Path = "tickers.csv"
	cfg.Input.TickerColumn = "Ticker"
	cfg.Provider.Benchmark = "^GSPC"
	cfg.Provider.TimeoutSeconds = 20
	cfg.Provider.RateLimitRPS = 4
	cfg.Provider.RateLimitBurst = 8
	cfg.Cache.TTLSeconds = 900
	cfg.Scan.Concurrency = 4
	cfg.Output.Dir = "out"
	return cfg
}

// Load reads config from a YAML file, then applies environment
// variable overrides. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("STOCKRANK_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("STOCKRANK_TICKER_COLUMN"); v != "" {
		cfg.Input.TickerColumn = v
	}
	if v := os.Getenv("STOCKRANK_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("STOCKRANK_BENCHMARK"); v != "" {
		cfg.Provider.Benchmark = v
	}
	if v := os.Getenv("STOCKRANK_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("STOCKRANK_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Scan.Concurrency = n
		}
	}
	if v := os.Getenv("STOCKRANK_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}

	if cfg.Scan.Concurrency < 1 {
		cfg.Scan.Concurrency = 1
	}
	return cfg, nil
}
