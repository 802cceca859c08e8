package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the portal.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RecordsCreated   *prometheus.CounterVec
	RecordsRemoved   *prometheus.CounterVec
	PermissionDenied *prometheus.CounterVec
	UploadBytes      *prometheus.HistogramVec
	RemindersSent    *prometheus.CounterVec
	ReminderRuns     *prometheus.CounterVec
	ReminderDuration prometheus.Histogram
	RateLookups      *prometheus.CounterVec
	EndpointLatency  *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_records_created_total",
			Help: "Total number of registry records created, labeled by kind",
		}, []string{"kind"}),
		RecordsRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_records_deactivated_total",
			Help: "Total number of registry records soft deleted, labeled by kind",
		}, []string{"kind"}),
		PermissionDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_permission_denied_total",
			Help: "Total number of mutations refused by the ownership rule, labeled by kind",
		}, []string{"kind"}),
		UploadBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_upload_bytes",
			Help:    "Size of accepted uploads in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 4, 7),
		}, []string{"kind"}),
		RemindersSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_reminders_sent_total",
			Help: "Total number of reminder notifications created, labeled by notification kind",
		}, []string{"kind"}),
		ReminderRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_reminder_runs_total",
			Help: "Total number of reminder sweeps, labeled by outcome",
		}, []string{"outcome"}),
		ReminderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "portal_reminder_duration_seconds",
			Help:    "Duration of reminder sweeps in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RateLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_rate_lookups_total",
			Help: "Total number of exchange rate lookups, labeled by result",
		}, []string{"result"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementRecordsCreated(kind string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementRecordsRemoved(kind string) {
	if m == nil {
		return
	}
	m.RecordsRemoved.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementPermissionDenied(kind string) {
	if m == nil {
		return
	}
	m.PermissionDenied.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveUpload(kind string, size int64) {
	if m == nil {
		return
	}
	m.UploadBytes.WithLabelValues(kind).Observe(float64(size))
}

func (m *Metrics) AddRemindersSent(kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RemindersSent.WithLabelValues(kind).Add(float64(n))
}

// ObserveReminderRun records one sweep.
func (m *Metrics) ObserveReminderRun(err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.ReminderRuns.WithLabelValues(outcome).Inc()
	m.ReminderDuration.Observe(d.Seconds())
}

func (m *Metrics) IncrementRateLookup(result string) {
	if m == nil {
		return
	}
	m.RateLookups.WithLabelValues(result).Inc()
}

// GinMiddleware observes request latency by matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.EndpointLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
