// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation. Metrics() measures request
// counts, latencies, and in-flight concurrency with bounded label
// cardinality ("path" is the registered Gin route, not the raw URL). A
// domain counter tracks rendered document downloads by format so the
// document endpoints show up in dashboards independently of raw HTTP
// traffic. All collectors are safe for concurrent use.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// httpReqs counts requests by method, route path, and status code.
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// httpLat records request duration in seconds by method and route path.
	// Status is omitted to keep histogram cardinality lower.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// httpInflight gauges the number of in-flight requests.
	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// renderedDocs counts document downloads by format ("html" or "xlsx")
	// and outcome ("ok" or "error").
	renderedDocs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_documents_rendered_total",
			Help: "Total number of comparison documents rendered for download.",
		},
		[]string{"format", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, renderedDocs)
}

// CountRenderedDocument records one document-render attempt. Format should
// be "html" or "xlsx"; ok reports whether rendering succeeded.
func CountRenderedDocument(format string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	renderedDocs.WithLabelValues(format, outcome).Inc()
}

// Metrics returns a Gin middleware that instruments requests with Prometheus.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// The "path" label uses c.FullPath() to avoid unbounded cardinality from raw
// URLs, falling back to the raw path when no route matched (e.g. 404).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpReqs.WithLabelValues(method, path, status).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
