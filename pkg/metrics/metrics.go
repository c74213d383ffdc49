// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ielts",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method, and status code.",
	}, []string{"endpoint", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ielts",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	generationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ielts",
		Subsystem: "generation",
		Name:      "requests_total",
		Help:      "Completion-service calls by feature and outcome.",
	}, []string{"feature", "outcome"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ielts",
		Subsystem: "generation",
		Name:      "duration_seconds",
		Help:      "Completion-service call latency by feature.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"feature"})

	judgeVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ielts",
		Subsystem: "judge",
		Name:      "verdicts_total",
		Help:      "Answer-judge verdicts.",
	}, []string{"verdict"})
)

// RecordHTTPRequest counts a finished request and its latency.
func RecordHTTPRequest(endpoint, method, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
	httpRequestDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}

// RecordGeneration counts a completion-service call.
func RecordGeneration(feature string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	generationRequests.WithLabelValues(feature, outcome).Inc()
	generationDuration.WithLabelValues(feature).Observe(elapsed.Seconds())
}

// RecordJudgeVerdict counts an answer-judge decision.
func RecordJudgeVerdict(correct bool) {
	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	judgeVerdicts.WithLabelValues(verdict).Inc()
}
