package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyrooms",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studyrooms",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	reservationRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyrooms",
			Name:      "reservation_rejections_total",
			Help:      "Reservation validation rejections by failed check.",
		},
		[]string{"check"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, reservationRejections)
	})
}

// ObserveHTTP records one completed HTTP request.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(route).Observe(seconds)
}

// IncRejection increments the rejection counter for a validation check.
func IncRejection(check string) {
	reservationRejections.WithLabelValues(check).Inc()
}
