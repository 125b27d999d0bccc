package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "Total number of console HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "Histogram of console HTTP request durations.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route", "status"},
	)
	backendCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_backend_calls_total",
			Help: "Calls made to the admin REST backend, by outcome.",
		},
		[]string{"method", "path", "outcome"},
	)
	backendCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_backend_call_duration_seconds",
			Help:    "Latency of admin REST backend calls.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15},
		},
		[]string{"method", "path"},
	)
	panicsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_panics_total",
			Help: "Handler panics recovered by the console.",
		},
		[]string{"route"},
	)
	skuCombinations = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "console_sku_combinations",
			Help:    "Number of SKUs produced per draft resync.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(backendCallsTotal)
	prometheus.MustRegister(backendCallDuration)
	prometheus.MustRegister(panicsTotal)
	prometheus.MustRegister(skuCombinations)
}

// RecordRequest records one served console request.
func RecordRequest(method, route string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordBackendCall records one backend round trip. outcome is "ok",
// "rejected", "unauthorized" or "transport".
func RecordBackendCall(method, path, outcome string, duration time.Duration) {
	backendCallsTotal.WithLabelValues(method, path, outcome).Inc()
	backendCallDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordPanic(route string) {
	if route == "" {
		route = "unmatched"
	}
	panicsTotal.WithLabelValues(route).Inc()
}

// RegisterOpenDrafts exposes the size of the draft store. Call it once per
// process.
func RegisterOpenDrafts(count func() int) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "console_open_drafts",
			Help: "SPU drafts currently held in memory.",
		},
		func() float64 { return float64(count()) },
	))
}

func ObserveSKUCount(n int) {
	skuCombinations.Observe(float64(n))
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return strconv.Itoa(statusCode)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
