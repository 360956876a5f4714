// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the room scan pipeline. All methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	scansTotal        *prometheus.CounterVec
	scanPoints        prometheus.Histogram
	scanKeptRatio     prometheus.Histogram
	styleMatches      *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		scansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "room_scans_total",
			Help: "Room scans run, by point source and outcome.",
		}, []string{"source", "outcome"}),
		scanPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "room_scan_points",
			Help:    "Number of sample points per scan.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 7),
		}),
		scanKeptRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "room_scan_kept_ratio",
			Help:    "Share of points surviving outlier filtering.",
			Buckets: prometheus.LinearBuckets(0.5, 0.05, 11),
		}),
		styleMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "room_style_matches_total",
			Help: "Styles assigned to scanned rooms.",
		}, []string{"style"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.scansTotal,
		m.scanPoints,
		m.scanKeptRatio,
		m.styleMatches,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware records request counts and latency labelled by chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveScan records one pipeline run
func (m *Metrics) ObserveScan(source, outcome string, points, kept int, style string) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(source, outcome).Inc()
	m.scanPoints.Observe(float64(points))
	if points > 0 && kept > 0 {
		m.scanKeptRatio.Observe(float64(kept) / float64(points))
	}
	if style != "" {
		m.styleMatches.WithLabelValues(style).Inc()
	}
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
