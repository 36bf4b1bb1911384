// Package metrics exposes Prometheus metrics for verification and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Metrics holds the application collectors. A nil *Metrics records nothing.
type Metrics struct {
	// Verification outcomes by outcome and failing gate
	Decisions *prometheus.CounterVec

	// Analyzer calls by result ("ok", "error")
	AnalyzerCalls   *prometheus.CounterVec
	AnalyzerLatency prometheus.Histogram

	// HTTP requests by method, route pattern and status code
	HTTPDuration *prometheus.HistogramVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_verification_decisions_total",
			Help: "Verification outcomes by outcome and failing gate",
		}, []string{"outcome", "gate"}),

		AnalyzerCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_analyzer_calls_total",
			Help: "Receipt analyzer calls by result",
		}, []string{"result"}),

		AnalyzerLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_analyzer_duration_seconds",
			Help:    "Duration of receipt analyzer calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// RecordDecision counts one verification outcome.
func (m *Metrics) RecordDecision(outcome domain.Outcome, gate string) {
	if m != nil {
		m.Decisions.WithLabelValues(outcome.String(), gate).Inc()
	}
}

// RecordAnalyzer counts one analyzer call and its duration.
func (m *Metrics) RecordAnalyzer(ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.AnalyzerCalls.WithLabelValues(result).Inc()
	m.AnalyzerLatency.Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m != nil {
		m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
