// Package metrics exposes Prometheus collectors for the studio service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "template_studio",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "template_studio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route"},
	)

	generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "template_studio",
			Subsystem: "generation",
			Name:      "total",
			Help:      "Generations by outcome.",
		},
		[]string{"outcome"},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "template_studio",
			Subsystem: "generation",
			Name:      "upstream_duration_seconds",
			Help:      "Duration of generative API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2m
		},
	)

	xpMovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "template_studio",
			Subsystem: "xp",
			Name:      "movements_total",
			Help:      "XP moved, by ledger reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		generations,
		generationDuration,
		xpMovements,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request.
func ObserveHTTP(method, route string, status int, took time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// ObserveGeneration records a generation outcome such as "completed" or "refunded".
func ObserveGeneration(outcome string) {
	generations.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records how long the generative API took.
func ObserveUpstream(took time.Duration) {
	generationDuration.Observe(took.Seconds())
}

// ObserveXP records an absolute XP amount moved for reason.
func ObserveXP(reason string, amount int64) {
	if amount < 0 {
		amount = -amount
	}
	xpMovements.WithLabelValues(reason).Add(float64(amount))
}
