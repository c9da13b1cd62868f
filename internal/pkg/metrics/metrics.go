package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "groomer_crm"

type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge

	ConflictChecks     *prometheus.CounterVec
	ConflictCandidates prometheus.Histogram

	AppointmentsWritten *prometheus.CounterVec
	RateLimited         *prometheus.CounterVec

	OutboxPublished prometheus.Counter
	OutboxFailed    prometheus.Counter
}

// NewCollector builds a collector on its own registry so tests can create
// as many as they like without duplicate-registration panics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),

		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		ConflictChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_checks_total",
			Help:      "Appointment conflict checks by result (clear, conflict, error).",
		}, []string{"result"}),

		ConflictCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conflict_candidates",
			Help:      "Number of candidate appointments compared per conflict check.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),

		AppointmentsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "written_total",
			Help:      "Appointment writes by operation.",
		}, []string{"operation"}),

		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by policy.",
		}, []string{"policy"}),

		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Outbox events delivered to the broker.",
		}),

		OutboxFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "failed_total",
			Help:      "Outbox publish attempts that failed.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.RequestsTotal,
		c.RequestDuration,
		c.InFlight,
		c.ConflictChecks,
		c.ConflictCandidates,
		c.AppointmentsWritten,
		c.RateLimited,
		c.OutboxPublished,
		c.OutboxFailed,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveConflictCheck records one conflict check.
func (c *Collector) ObserveConflictCheck(result string, candidates int) {
	c.ConflictChecks.WithLabelValues(result).Inc()
	c.ConflictCandidates.Observe(float64(candidates))
}

func (c *Collector) IncAppointmentWrite(operation string) {
	c.AppointmentsWritten.WithLabelValues(operation).Inc()
}

func (c *Collector) IncRateLimited(policy string) {
	c.RateLimited.WithLabelValues(policy).Inc()
}

func (c *Collector) IncOutboxPublished(n int) {
	c.OutboxPublished.Add(float64(n))
}

func (c *Collector) IncOutboxFailed() {
	c.OutboxFailed.Inc()
}
