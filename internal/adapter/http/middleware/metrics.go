package middleware

import (
	"time"

	"espaco_vista/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency labelled by route pattern.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}
