package middleware

import (
	"log/slog"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttachRequestDetails tags every request with a trace id and emits one
// access-log line when the handler returns. The trace id propagates
// through the request context so downstream log lines correlate.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-Id")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set("X-Request-Id", traceID)

		start := time.Now().UTC()
		c.Next()

		logger.CtxInfo(c.Request.Context(), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
