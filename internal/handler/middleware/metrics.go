package middleware

import (
	"strconv"
	"time"

	"groomer-crm/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by route template so that
// /api/appointments/:id stays a single series.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		collector.InFlight.Inc()
		defer collector.InFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		collector.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		collector.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
