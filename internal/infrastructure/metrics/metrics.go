package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Branch metrics
	BranchesCreated  prometheus.Counter
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Holding metrics
	HoldingsCreated    prometheus.Counter
	ConversionsCreated prometheus.Counter
	ConversionDuration prometheus.Histogram
	ConversionErrors   *prometheus.CounterVec

	// Payment metrics
	PaymentsCreated prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBErrors *prometheus.CounterVec

	// Price cache metrics
	PriceCacheHits   prometheus.Counter
	PriceCacheMisses prometheus.Counter

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		BranchesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_branches_created_total",
			Help: "Total number of vendor branches created",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_branch_transfers_total",
			Help: "Total number of branch-to-branch gold transfers",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "goldvault_branch_transfer_duration_seconds",
			Help:    "Duration of branch transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldvault_branch_transfer_errors_total",
				Help: "Total number of branch transfer errors by type",
			},
			[]string{"error_type"},
		),

		HoldingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_holdings_created_total",
			Help: "Total number of virtual gold holdings created",
		}),
		ConversionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_conversions_total",
			Help: "Total number of virtual-to-physical conversions",
		}),
		ConversionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "goldvault_conversion_duration_seconds",
			Help:    "Duration of conversion operations",
			Buckets: prometheus.DefBuckets,
		}),
		ConversionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldvault_conversion_errors_total",
				Help: "Total number of conversion errors by type",
			},
			[]string{"error_type"},
		),

		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_payments_created_total",
			Help: "Total number of payments created",
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldvault_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goldvault_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldvault_db_errors_total",
				Help: "Total database errors by operation",
			},
			[]string{"operation"},
		),

		PriceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_price_cache_hits_total",
			Help: "Gold price cache hits",
		}),
		PriceCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_price_cache_misses_total",
			Help: "Gold price cache misses",
		}),

		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldvault_rate_limit_hits_total",
				Help: "Requests rejected by rate limiting",
			},
			[]string{"path"},
		),

		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_outbox_events_published_total",
			Help: "Outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "goldvault_outbox_publish_errors_total",
			Help: "Outbox publish failures",
		}),
	}
}
