package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/metrics"
)

// Metrics records every request by route template, so path parameters do
// not fan out label values.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
