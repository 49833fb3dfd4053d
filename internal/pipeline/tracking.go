package pipeline

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts records API calls by endpoint and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "upstream_requests_total",
			Help:      "Total number of records API requests",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration measures records API latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of records API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// StaleResponsesTotal counts responses dropped because a newer request was issued.
	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "stale_responses_total",
			Help:      "Total number of records responses discarded as stale",
		},
	)

	// RecordsLoaded is the size of the most recently applied record set.
	RecordsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "records_loaded",
			Help:      "Number of records in the last applied record set",
		},
	)
)

// trackRequest records one upstream call. status is the HTTP status or 0 on transport failure.
func trackRequest(endpoint string, status int, started time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(endpoint, label).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}
