package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Ticker", cfg.Input.TickerColumn)
	assert.Equal(t, "^GSPC", cfg.Provider.Benchmark)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  ticker_column: Symbol
provider:
  benchmark: "^NDX"
scan:
  concurrency: 8
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Symbol", cfg.Input.TickerColumn)
	assert.Equal(t, "^NDX", cfg.Provider.Benchmark)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
	// untouched keys keep defaults
	assert.Equal(t, "out", cfg.Output.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STOCKRANK_BENCHMARK", "^FTSE")
	t.Setenv("STOCKRANK_CONCURRENCY", "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "^FTSE", cfg.Provider.Benchmark)
	assert.Equal(t, 2, cfg.Scan.Concurrency)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::not yaml::"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
