package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "site_build_duration_seconds",
			Help:    "Duration of a full site build in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
	)

	BuildCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_build_count",
			Help: "Total number of site builds",
		},
		[]string{"status"}, // success, failed
	)

	PagesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_pages_rendered_count",
			Help: "Total number of pages rendered, by layout",
		},
		[]string{"layout"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submission_count",
			Help: "Total number of contact form submissions",
		},
		[]string{"outcome"}, // accepted, failed, invalid, duplicate, rate_limited
	)
)

func RecordBuild(duration time.Duration, err error) {
	BuildDuration.Observe(duration.Seconds())
	status := "success"
	if err != nil {
		status = "failed"
	}
	BuildCount.WithLabelValues(status).Inc()
}

func RecordPage(layout string) {
	PagesRendered.WithLabelValues(layout).Inc()
}

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordContact(outcome string) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
}
