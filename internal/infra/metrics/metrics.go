package metrics

import (
	"net/http"
	"strconv"
	"time"

	"stay-booking/internal/domain/reservation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stay_booking"

// Metrics owns a private registry exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	bookingAttempts      *prometheus.CounterVec
	statusTransitions    *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpLatency          *prometheus.HistogramVec
	throttles            *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Reservation creation attempts segmented by outcome.",
		}, []string{"outcome"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "status_transitions_total",
			Help:      "Reservation status transitions segmented by source and target status.",
		}, []string{"from", "to"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "failures_total",
			Help:      "Notifications that could not be handed to the notifier.",
		}, []string{"event"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests segmented by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution for HTTP handlers.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		throttles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "throttles_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"reason"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.bookingAttempts,
		m.statusTransitions,
		m.notificationFailures,
		m.httpRequests,
		m.httpLatency,
		m.throttles,
	)
	return m
}

func (m *Metrics) BookingAttempt(outcome string) {
	m.bookingAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StatusTransition(from, to reservation.Status) {
	m.statusTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) NotificationFailed(event string) {
	m.notificationFailures.WithLabelValues(event).Inc()
}

// ObserveHTTP records a finished request. route should be the matched route
// template, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordThrottle(reason string) {
	if reason == "" {
		reason = "unspecified"
	}
	m.throttles.WithLabelValues(reason).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
