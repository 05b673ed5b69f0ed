// Package metrics exposes Prometheus collectors for classification outcomes
// and the external classifier.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hairharmony"

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	analyses         *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	externalFailures *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	savedResults     prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpErrors       *prometheus.CounterVec
}

// MustNewMetrics constructs Metrics registered with reg, or with the default
// registerer when reg is nil. Registering twice with the same registerer
// reuses the existing collectors; any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "results_total",
				Help:      "Completed analyses by season, source and fallback.",
			},
			[]string{"season", "source", "fallback"},
		),
		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "duration_seconds",
				Help:      "Time to produce an analysis, external call included.",
				Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 20},
			},
			[]string{"source"},
		),
		externalFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "external",
				Name:      "failures_total",
				Help:      "External classifier failures that fell back to the rules engine.",
			},
			[]string{"reason"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "external",
				Name:      "cache_lookups_total",
				Help:      "Verdict cache lookups by result.",
			},
			[]string{"result"},
		),
		savedResults: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "results_saved_total",
				Help:      "Results saved under a client key.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status class.",
			},
			[]string{"method", "route", "status"},
		),
		httpErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_errors_total",
				Help:      "HTTP requests that failed with a server error.",
			},
			[]string{"method", "route", "status"},
		),
	}

	m.analyses = register(reg, m.analyses)
	m.analysisDuration = register(reg, m.analysisDuration)
	m.externalFailures = register(reg, m.externalFailures)
	m.cacheLookups = register(reg, m.cacheLookups)
	m.savedResults = register(reg, m.savedResults)
	m.httpRequests = register(reg, m.httpRequests)
	m.httpErrors = register(reg, m.httpErrors)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveAnalysis records one finished analysis.
func (m *Metrics) ObserveAnalysis(season, source string, fallback bool, d time.Duration) {
	if m == nil {
		return
	}
	fb := "false"
	if fallback {
		fb = "true"
	}
	m.analyses.WithLabelValues(season, source, fb).Inc()
	m.analysisDuration.WithLabelValues(source).Observe(d.Seconds())
}

// IncExternalFailure counts an external classifier failure by reason.
func (m *Metrics) IncExternalFailure(reason string) {
	if m == nil {
		return
	}
	m.externalFailures.WithLabelValues(reason).Inc()
}

// ObserveCacheLookup counts a verdict cache hit or miss.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// IncSavedResult counts a result written to the store.
func (m *Metrics) IncSavedResult() {
	if m == nil {
		return
	}
	m.savedResults.Inc()
}

// ObserveHTTPRequest counts a served request. Server errors are also counted
// separately.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	class := statusClass(status)
	m.httpRequests.WithLabelValues(method, route, class).Inc()
	if status >= 500 {
		m.httpErrors.WithLabelValues(method, route, class).Inc()
	}
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "0"
	}
}
