package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sync pipeline metrics
	SyncRunsTotal       *prometheus.CounterVec
	SyncRecordsTotal    *prometheus.CounterVec
	SyncRunDuration     prometheus.Histogram
	UpstreamPageLatency prometheus.Histogram

	// Billing metrics
	UsageEntriesReported prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		SyncRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_runs_total",
				Help: "Total number of call-record sync runs",
			},
			[]string{"status", "kind"}, // completed/failed, manual/auto/admin_backfill
		),
		SyncRecordsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_records_total",
				Help: "Total number of records processed by sync runs",
			},
			[]string{"result"}, // inserted, updated, skip reason
		),
		SyncRunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sync_run_duration_seconds",
			Help:    "End-to-end sync run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		UpstreamPageLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "upstream_page_latency_seconds",
			Help:    "Latency of upstream call-log page requests",
			Buckets: prometheus.DefBuckets,
		}),

		UsageEntriesReported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "usage_entries_reported_total",
			Help: "Usage ledger entries pushed to the billing provider",
		}),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw path

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}
