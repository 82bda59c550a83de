// Package metrics exports Prometheus search, request and form metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ictam/agmsite/internal/core/ports/driven"
)

const namespace = "agmsite"

// Ensure Observer implements the interface.
var _ driven.SearchObserver = (*Observer)(nil)

// Observer records metrics into its own registry.
type Observer struct {
	registry *prometheus.Registry

	searchLatency prometheus.Histogram
	searchMatches prometheus.Histogram
	indexBuilds   prometheus.Counter
	indexRecords  prometheus.Gauge
	requests      *prometheus.CounterVec
	requestTime   *prometheus.HistogramVec
	submissions   *prometheus.CounterVec
}

// NewObserver creates an observer with Go runtime and process collectors
// registered alongside the site metrics.
func NewObserver() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent matching a query against the index.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
		searchMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_matches",
			Help:      "Number of records matched per query, before pagination.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		indexBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_builds_total",
			Help:      "Number of times the search index was built.",
		}),
		indexRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_records",
			Help:      "Number of records in the current search index.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
	}

	o.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		o.searchLatency,
		o.searchMatches,
		o.indexBuilds,
		o.indexRecords,
		o.requests,
		o.requestTime,
		o.submissions,
	)
	return o
}

// ObserveSearch implements driven.SearchObserver.
func (o *Observer) ObserveSearch(d time.Duration, matches int) {
	o.searchLatency.Observe(d.Seconds())
	o.searchMatches.Observe(float64(matches))
}

// ObserveIndexBuild implements driven.SearchObserver.
func (o *Observer) ObserveIndexBuild(_ time.Duration, records int) {
	o.indexBuilds.Inc()
	o.indexRecords.Set(float64(records))
}

// ObserveRequest records one HTTP request.
func (o *Observer) ObserveRequest(route string, code int, d time.Duration) {
	o.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	o.requestTime.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveSubmission records a form outcome such as "accepted", "invalid"
// or "rate_limited".
func (o *Observer) ObserveSubmission(form, outcome string) {
	o.submissions.WithLabelValues(form, outcome).Inc()
}

// Registry exposes the underlying registry.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}
