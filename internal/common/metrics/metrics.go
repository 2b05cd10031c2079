// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Total number of webhook requests by intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "webhook_request_duration_seconds",
			Help: "Duration of webhook dispatch in seconds",
		},
		[]string{"intent"},
	)

	UpstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_calls_total",
			Help: "Total number of outbound provider calls by provider and status class",
		},
		[]string{"provider", "status_class"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "upstream_call_duration_seconds",
			Help: "Duration of outbound provider calls in seconds",
		},
		[]string{"provider"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "webhook_requests_in_flight",
			Help: "Number of webhook requests currently being served",
		},
	)
)

// StatusClass buckets an HTTP status into "2xx", "4xx", ... or "error"
// when no response was received.
func StatusClass(status int) string {
	switch {
	case status <= 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
