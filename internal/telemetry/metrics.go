package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the Prometheus metrics the screener exposes.
type Registry struct {
	ProviderRequests  *prometheus.CounterVec
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	MetricUnavailable *prometheus.CounterVec
	ScanDuration      prometheus.Histogram
	SecuritiesScanned prometheus.Counter
}

// NewRegistry creates the metric set and registers it with reg. Pass
// prometheus.DefaultRegisterer in the binary; tests use a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		ProviderRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockrank_provider_requests_total",
				Help: "Provider HTTP requests by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockrank_cache_hits_total",
			Help: "Provider response cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockrank_cache_misses_total",
			Help: "Provider response cache misses",
		}),
		MetricUnavailable: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockrank_metric_unavailable_total",
				Help: "Metric computations that produced an unavailable value",
			},
			[]string{"kind"},
		),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockrank_scan_duration_seconds",
			Help:    "End-to-end duration of a cross-sectional scan",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		SecuritiesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockrank_securities_scanned_total",
			Help: "Securities processed across all scans",
		}),
	}

	reg.MustRegister(
		r.ProviderRequests,
		r.CacheHits,
		r.CacheMisses,
		r.MetricUnavailable,
		r.ScanDuration,
		r.SecuritiesScanned,
	)
	return r
}
