// middleware/metrics.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/integration/metrics"
)

// Metrics records a request counter and a latency observation for every
// inbound request, including the proxy and aggregation routes. Latency is
// measured from entry until the response is ready to send.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			// Unmatched routes (404s) keep the raw path
			endpoint = c.Request.URL.Path
		}
		collector.Observe(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
