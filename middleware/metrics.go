package middleware

import (
	"net/http"
	"time"

	"legalassist/monitoring"

	"github.com/gin-gonic/gin"
)

func PrometheusMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := c.Writer.Status()
		monitoring.RequestsTotal.WithLabelValues(c.Request.Method, path, http.StatusText(status)).Inc()
		monitoring.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
