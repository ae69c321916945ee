package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Outcome labels of notes_analysis_runs_total
const (
	OutcomeFresh    = "fresh"
	OutcomeCached   = "cached"
	OutcomeDegraded = "degraded"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds Prometheus metrics for notes analysis.
//
// Metrics:
//   - notes_analysis_runs_total{outcome} - analyses by outcome
//   - notes_analysis_duration_seconds - wall time of pipeline runs
//   - notes_analysis_items_total{category} - items emitted by fresh runs
//   - notes_analysis_cache_errors_total{op} - fast cache failures, ignored by callers
type Metrics struct {
	RunsTotal        *prometheus.CounterVec
	Duration         prometheus.Histogram
	ItemsTotal       *prometheus.CounterVec
	CacheErrorsTotal *prometheus.CounterVec
}

// New registers the metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_analysis_runs_total",
				Help: "Total number of notes analyses by outcome",
			},
			[]string{"outcome"},
		),
		Duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notes_analysis_duration_seconds",
				Help:    "Duration of notes pipeline runs in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		ItemsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_analysis_items_total",
				Help: "Total number of items extracted by category",
			},
			[]string{"category"}, // decisions, actions, clarification_points, upcoming_points
		),
		CacheErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_analysis_cache_errors_total",
				Help: "Total number of fast cache failures by operation",
			},
			[]string{"op"}, // get, set
		),
	}
}

// Default returns the metrics registered once on the default registerer
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// ObserveRun records one analysis. A nil receiver records nothing.
func (m *Metrics) ObserveRun(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeFresh || outcome == OutcomeDegraded {
		m.Duration.Observe(elapsed.Seconds())
	}
}

// ObserveItems records the size of a fresh result
func (m *Metrics) ObserveItems(decisions, actions, clarifications, upcoming int) {
	if m == nil {
		return
	}
	m.ItemsTotal.WithLabelValues("decisions").Add(float64(decisions))
	m.ItemsTotal.WithLabelValues("actions").Add(float64(actions))
	m.ItemsTotal.WithLabelValues("clarification_points").Add(float64(clarifications))
	m.ItemsTotal.WithLabelValues("upcoming_points").Add(float64(upcoming))
}

// CacheError records a failed fast cache operation
func (m *Metrics) CacheError(op string) {
	if m == nil {
		return
	}
	m.CacheErrorsTotal.WithLabelValues(op).Inc()
}
