// Package metrics holds the Prometheus collectors shared by the upstream
// client and the HTTP layer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jikan_upstream_requests_total",
		Help: "Upstream attempts by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	UpstreamRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jikan_upstream_request_seconds",
		Help:    "Duration of a single upstream attempt.",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})

	UpstreamRetryTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jikan_upstream_retries_total",
		Help: "Retries scheduled by reason.",
	}, []string{"reason"})

	ThrottleWaitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "jikan_throttle_wait_seconds",
		Help:    "Time spent waiting for the outbound spacing slot.",
		Buckets: []float64{0, .05, .1, .2, .34, .5, 1, 2, 5, 10},
	})

	SampleTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jikan_random_samples_total",
		Help: "Random samples served by strategy and result.",
	}, []string{"strategy", "result"})
)

// MustRegister registers every collector plus the Go runtime collectors.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		UpstreamRequestTotal,
		UpstreamRequestDuration,
		UpstreamRetryTotal,
		ThrottleWaitDuration,
		SampleTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveUpstream records one upstream attempt.
func ObserveUpstream(endpoint, outcome string, start time.Time) {
	if endpoint == "" {
		endpoint = "unknown"
	}
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	UpstreamRequestTotal.WithLabelValues(endpoint, outcome).Inc()
}

// IncRetry counts a scheduled retry.
func IncRetry(reason string) {
	UpstreamRetryTotal.WithLabelValues(reason).Inc()
}

// ObserveThrottleWait records how long an acquisition waited.
func ObserveThrottleWait(d time.Duration) {
	ThrottleWaitDuration.Observe(d.Seconds())
}

// IncSample counts a served random sample.
func IncSample(strategy, result string) {
	SampleTotal.WithLabelValues(strategy, result).Inc()
}
