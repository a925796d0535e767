package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuthEventsTotal counts authentication outcomes by event
	// (register, register_conflict, login, login_failed, token_rejected, account_deleted).
	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Total number of authentication events by outcome",
		},
		[]string{"event"},
	)

	// ContentRows is the row count per table, refreshed by the scheduler.
	ContentRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "content_rows",
			Help: "Number of stored rows by table",
		},
		[]string{"table"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuthEventsTotal, ContentRows)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /blogs/123 -> /blogs/{id}, /comments/45 -> /comments/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncAuthEvent increments the auth event counter.
func IncAuthEvent(event string) {
	AuthEventsTotal.WithLabelValues(event).Inc()
}

// SetContentRows sets the row gauge for table.
func SetContentRows(table string, n int) {
	ContentRows.WithLabelValues(table).Set(float64(n))
}
