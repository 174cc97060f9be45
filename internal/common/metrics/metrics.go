package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lpcr_submissions_total",
			Help: "Total number of applicant submissions by outcome",
		},
		[]string{"outcome"},
	)

	TransportAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lpcr_transport_attempts_total",
			Help: "Total number of HTTP POST attempts including retries",
		},
	)

	TransportRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lpcr_transport_retries_total",
			Help: "Total number of retry attempts after transport failures",
		},
	)

	HTTPResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lpcr_http_responses_total",
			Help: "Total number of received HTTP responses by status class",
		},
		[]string{"status_class"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "lpcr_submission_duration_seconds",
			Help: "Duration of one applicant submission including retries",
		},
	)
)

// StatusClass buckets an HTTP status code into its metrics label ("2xx",
// "4xx", ...).
func StatusClass(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	default:
		return "other"
	}
}
