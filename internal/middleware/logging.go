package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/logger"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/metrics"
)

// RequestLogger tags every request with a uuid, logs it, and feeds the
// request metrics.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		operation := c.FullPath()
		if operation == "" {
			operation = "unmatched"
		}
		status := c.Writer.Status()
		m.ObserveRequest(operation, strconv.Itoa(status), duration)

		entry := log.WithRequestID(requestID).WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
		})
		if status >= 500 {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}
