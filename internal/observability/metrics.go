package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meshghost",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"part", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "meshghost",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"part", "method", "path", "status"},
	)

	snapRounds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meshghost",
			Subsystem: "snap",
			Name:      "rounds_total",
			Help:      "Snap driver rounds run, by phase.",
		},
		[]string{"phase"},
	)
	snapSuccesses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meshghost",
			Subsystem: "snap",
			Name:      "vertices_snapped_total",
			Help:      "Vertices successfully moved to their snap target.",
		},
		[]string{"phase"},
	)

	ghostSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meshghost",
			Subsystem: "ghost",
			Name:      "entities_sent_total",
			Help:      "Entities packed and sent during ghost exchange, by dimension.",
		},
		[]string{"dim"},
	)
	ghostReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meshghost",
			Subsystem: "ghost",
			Name:      "entities_received_total",
			Help:      "Ghost entities unpacked and installed, by dimension.",
		},
		[]string{"dim"},
	)
	ghostExchangeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "meshghost",
			Subsystem: "ghost",
			Name:      "exchange_duration_seconds",
			Help:      "Wall-clock duration of one ghost.Create dimension pass.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dim"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			snapRounds, snapSuccesses,
			ghostSent, ghostReceived, ghostExchangeDuration,
		)
	})
}

func RecordHTTPRequest(part, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(part, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(part, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordSnapRound(phase string, successes int) {
	RegisterMetrics()
	snapRounds.WithLabelValues(phase).Inc()
	snapSuccesses.WithLabelValues(phase).Add(float64(successes))
}

func RecordGhostExchange(dim int, sent, received int, duration time.Duration) {
	RegisterMetrics()
	dimLabel := strconv.Itoa(dim)
	ghostSent.WithLabelValues(dimLabel).Add(float64(sent))
	ghostReceived.WithLabelValues(dimLabel).Add(float64(received))
	ghostExchangeDuration.WithLabelValues(dimLabel).Observe(duration.Seconds())
}
