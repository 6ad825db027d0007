package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dhabedank/recipe-gpt/internal/logging"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	ctxKeyRequestID = "request_id"
	ctxKeyLog       = "log"
)

// RequestID reuses the caller's X-Request-ID or assigns a new uuid.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger attaches a request-scoped logger and logs each completed request.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.WithFields(logrus.Fields{
			"http.req.id":     c.GetString(ctxKeyRequestID),
			"http.req.path":   c.Request.URL.Path,
			"http.req.method": c.Request.Method,
		})
		c.Set(ctxKeyLog, reqLog)

		c.Next()

		reqLog.WithFields(logrus.Fields{
			"http.resp.status":  c.Writer.Status(),
			"http.resp.bytes":   c.Writer.Size(),
			"http.resp.took_ms": time.Since(start).Milliseconds(),
		}).Info("request complete")
	}
}

// Logger returns the request-scoped logger, or a discarding one outside
// RequestLogger.
func Logger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(ctxKeyLog); ok {
		if log, ok := v.(logrus.FieldLogger); ok {
			return log
		}
	}
	return logging.Discard()
}
