package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus registry, the HTTP server exposing it, and
// the counters the classification pipeline reports into.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the dedicated Prometheus registry for this service.
	Registry *prometheus.Registry

	classificationsTotal *prometheus.CounterVec
	cacheLookupsTotal    *prometheus.CounterVec
	rateLimitedTotal     prometheus.Counter
	degradedRetrievals   *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
}

// NewMetrics builds a Metrics instance with a dedicated registry, a
// constant service label on every metric, the default Go/process collectors,
// and an HTTP server exposing /metrics on the configured address.
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{Registry: registry}

	m.classificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifications_total",
			Help: "Classification requests by terminal outcome",
		},
		[]string{"outcome"},
	)
	m.cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)
	m.rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
	m.degradedRetrievals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degraded_retrievals_total",
			Help: "Retrieval calls that degraded to empty context",
		},
		[]string{"source"},
	)
	m.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classification_duration_seconds",
			Help:    "End-to-end classification latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cached"},
	)

	wrapped.MustRegister(
		m.classificationsTotal,
		m.cacheLookupsTotal,
		m.rateLimitedTotal,
		m.degradedRetrievals,
		m.requestDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return m
}
