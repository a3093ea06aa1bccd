package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commit outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeTaken    = "slot_taken"
	OutcomeInvalid  = "invalid"
	OutcomeClosed   = "closed"
	OutcomeFailed   = "failed"
	OutcomeVacation = "vacation"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	commits      *prometheus.CounterVec
	liveStreams  prometheus.Gauge
	auditDropped prometheus.Counter
	purged       prometheus.Counter
}

func New(service string) *Metrics {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by route, method and status.",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_commits_total",
			Help:        "Booking commit attempts by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		liveStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_streams_active",
			Help:        "Open live slot-grid websocket streams.",
			ConstLabels: labels,
		}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "audit_events_dropped_total",
			Help:        "Audit events dropped because the queue was full.",
			ConstLabels: labels,
		}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "blocked_dates_purged_total",
			Help:        "Past blocked-date records removed by the purge job.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.commits, m.liveStreams, m.auditDropped, m.purged,
	)
	return m
}

// The methods below are nil-safe so metrics can be switched off.

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) Commit(outcome string) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StreamOpened() {
	if m != nil {
		m.liveStreams.Inc()
	}
}

func (m *Metrics) StreamClosed() {
	if m != nil {
		m.liveStreams.Dec()
	}
}

func (m *Metrics) AuditDropped() {
	if m != nil {
		m.auditDropped.Inc()
	}
}

func (m *Metrics) Purged(n int64) {
	if m != nil && n > 0 {
		m.purged.Add(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
