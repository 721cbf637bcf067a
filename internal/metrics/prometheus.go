package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the ingestion service

var (
	// API call metrics
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tftladder_api_calls_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"endpoint", "status"},
	)

	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tftladder_api_call_duration_seconds",
			Help:    "Duration of upstream API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Flow metrics
	FlowRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tftladder_flow_runs_total",
			Help: "Total number of pipeline flow runs",
		},
		[]string{"flow", "status"},
	)

	FlowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tftladder_flow_duration_seconds",
			Help:    "Duration of pipeline flow runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"flow"},
	)

	// Ingestion gauges
	PlayersTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tftladder_players_tracked",
			Help: "Number of players in the database",
		},
	)

	MatchesIngested = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tftladder_matches_ingested_total",
			Help: "Total number of matches in the database",
		},
	)

	LeaderboardSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tftladder_leaderboard_entries",
			Help: "Number of rows in the current leaderboard snapshot",
		},
	)

	StaticAssetsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tftladder_static_assets_ingested_total",
			Help: "Total number of static assets upserted",
		},
		[]string{"category"},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tftladder_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tftladder_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tftladder_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tftladder_uptime_seconds",
			Help: "Worker uptime in seconds",
		},
	)
)
