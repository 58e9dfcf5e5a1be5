package middleware

import (
	"time"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// Logger middleware writes one access log line per request
func Logger(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": logger.RequestID(c.Request.Context()),
			"user_agent": c.Request.UserAgent(),
		}
		if userID, ok := UserID(c); ok {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			log.Error("Request processed", fields)
		case statusCode >= 400:
			log.Warn("Request processed", fields)
		default:
			log.Info("Request processed", fields)
		}
	}
}
