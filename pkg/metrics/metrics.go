// Package metrics provides Prometheus instrumentation for the ShopEasy client.
//
// Every outgoing request is timed by pkg/http; the best-effort paths count
// their silent losses so "accepted data loss" stays observable:
//
//	metrics.CartSyncFailures.Inc()
//	metrics.TelemetryDropped.Inc()
//
// The CLI `stats` command dumps the registry in Prometheus text format.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// RequestDuration tracks outbound HTTP request latency,
	// broken down by method, host, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopeasy",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "host", "status"},
	)

	// RequestTotal counts all outbound HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopeasy",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of outbound HTTP requests.",
		},
		[]string{"method", "host", "status"},
	)

	// CartSyncFailures counts best-effort cart mirror attempts that were lost.
	CartSyncFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shopeasy",
		Subsystem: "cart",
		Name:      "sync_failures_total",
		Help:      "Total cart mirror attempts that failed and were dropped.",
	})

	// TelemetryDropped counts analytics events that were lost in transit.
	TelemetryDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shopeasy",
		Subsystem: "telemetry",
		Name:      "events_dropped_total",
		Help:      "Total analytics events that failed to send and were dropped.",
	})
)

// DefaultRegistry is the Prometheus registry used by the client.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		CartSyncFailures,
		TelemetryDropped,
	)
}

// Register lets you add your own prometheus.Collector to the client registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister panics if registration fails.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ObserveRequest records one outbound request:
//
//	defer metrics.ObserveRequest("GET", "api.shop.example", 200, time.Now())
func ObserveRequest(method, host string, status int, start time.Time) {
	s := strconv.Itoa(status)
	RequestDuration.WithLabelValues(method, host, s).Observe(time.Since(start).Seconds())
	RequestTotal.WithLabelValues(method, host, s).Inc()
}
