package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/finecheck/internal/telemetry"
)

// Logging emits one structured log line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
		}
		if report := c.Param("report"); report != "" {
			fields["report_number"] = report
		}
		if cached, ok := c.Get("cached"); ok {
			fields["cached"] = cached
		}
		telemetry.Info("request.complete", fields)
	}
}
