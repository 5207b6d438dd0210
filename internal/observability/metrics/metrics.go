package metrics

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "tradedesk_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	dashboardBuildTotal   *prometheus.CounterVec
	dashboardBuildLatency *prometheus.HistogramVec
	actionItemsTotal      *prometheus.CounterVec
	exportTotal           *prometheus.CounterVec
	exportLatency         *prometheus.HistogramVec
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestLatency    *prometheus.HistogramVec
)

// Init registers the application metrics, plus connection pool gauges when
// pool is non-nil. Safe to call more than once.
func Init(pool PoolStatter, logger *slog.Logger) {
	registerOnce.Do(func() {
		dashboardBuildTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dashboard_build_total",
				Help: "Total dashboard builds by result",
			},
			[]string{"result"},
		)
		dashboardBuildLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dashboard_build_latency_seconds",
				Help:    "Dashboard build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		actionItemsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dashboard_action_items_total",
				Help: "Total action items surfaced by type",
			},
			[]string{"type"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dashboard_export_total",
				Help: "Total dashboard exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dashboard_export_latency_seconds",
				Help:    "Dashboard export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		)
		httpRequestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		)

		prometheus.MustRegister(
			dashboardBuildTotal,
			dashboardBuildLatency,
			actionItemsTotal,
			exportTotal,
			exportLatency,
			httpRequestsTotal,
			httpRequestLatency,
		)

		if pool != nil {
			registerPoolMetrics(pool, logger)
		}
	})
}

// ObserveDashboardBuild records dashboard build latency and result.
func ObserveDashboardBuild(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if dashboardBuildTotal != nil {
		dashboardBuildTotal.WithLabelValues(result).Inc()
	}
	if dashboardBuildLatency != nil {
		dashboardBuildLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncActionItem increments the surfaced action item counter.
func IncActionItem(actionType string) {
	if actionType == "" {
		actionType = "unknown"
	}
	if actionItemsTotal != nil {
		actionItemsTotal.WithLabelValues(actionType).Inc()
	}
}

// ObserveExport records export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// ObserveHTTPRequest records a served HTTP request.
func ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequestsTotal != nil {
		httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	}
	if httpRequestLatency != nil {
		httpRequestLatency.WithLabelValues(route, method).Observe(duration.Seconds())
	}
}
