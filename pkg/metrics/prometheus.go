package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ImpactRuns     prometheus.Counter
	RunDuration    prometheus.Histogram
	TemplateBuilds prometheus.Counter
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	Warnings       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ImpactRuns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impact_runs_total",
			Help:      "The total number of completed daily-impact runs",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "impact_run_duration_seconds",
			Help:      "Time taken to compute one daily-impact run",
			Buckets:   prometheus.DefBuckets,
		}),
		TemplateBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_builds_total",
			Help:      "The total number of capacity templates built from scratch",
		}),
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Reference cache hits per domain",
		}, []string{"domain"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Reference cache misses per domain",
		}, []string{"domain"}),
		Warnings: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_warnings_total",
			Help:      "Expected partial-data warnings by reason",
		}, []string{"reason"}),
	}
}

// CacheHit counts a reference cache hit for a domain
func (m *Metrics) CacheHit(domain string) {
	m.CacheHits.WithLabelValues(domain).Inc()
}

// CacheMiss counts a reference cache miss for a domain
func (m *Metrics) CacheMiss(domain string) {
	m.CacheMisses.WithLabelValues(domain).Inc()
}

// Warning counts one expected partial-data condition
func (m *Metrics) Warning(reason string) {
	m.Warnings.WithLabelValues(reason).Inc()
}
