package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets optimized for API response times ranging from milliseconds to 30+ seconds
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// Remote API client metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_operation_duration_seconds",
			Help:    "Remote API operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	APIRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_operation_total",
			Help: "Total number of remote API operations",
		},
		[]string{"operation", "status"},
	)

	// Chat polling metrics
	ChatPollTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_poll_ticks_total",
			Help: "Chat poll ticks by outcome",
		},
		[]string{"outcome"},
	)

	ChatMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_sent_total",
			Help: "Messages successfully sent",
		},
	)

	// Mentor search metrics
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_search_requests_total",
			Help: "Debounced mentor search requests by status",
		},
		[]string{"status"},
	)

	SearchSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mentor_search_suppressed_total",
			Help: "Search emissions suppressed because the form was unchanged",
		},
	)

	// Session metrics
	SessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Session credential lifecycle events",
		},
		[]string{"event"},
	)
)

// MeasureDuration returns the elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
