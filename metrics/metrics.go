// metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the per-request counters and latency histograms exposed at
// /metrics.
type Collector struct {
	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCollector creates and registers the request metrics on a private
// registry so test instances never collide.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integration_request_total",
				Help: "Total number of requests processed by the integration layer",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "integration_request_latency_seconds",
				Help:    "Request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
	c.registry.MustRegister(c.requestTotal, c.requestLatency)
	return c
}

// Observe records one completed request.
func (c *Collector) Observe(method, endpoint string, status int, elapsed time.Duration) {
	c.requestTotal.WithLabelValues(method, endpoint, statusLabel(status)).Inc()
	c.requestLatency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Handler serves the text exposition format.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

func statusLabel(status int) string {
	return strconv.Itoa(status)
}
