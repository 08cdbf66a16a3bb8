package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestId"
	loggerKey    = "logger"
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID header when present, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID.
func GetRequestID(c *gin.Context) (string, bool) {
	id, exists := c.Get(requestIDKey)
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// LoggingMiddleware stores a request-scoped logger in the context and writes
// one access log line once the handler chain has finished.
func LoggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := log
		if id, ok := GetRequestID(c); ok {
			reqLog = log.With(zap.String("request_id", id))
		}
		c.Set(loggerKey, reqLog)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("HTTP request", fields...)
		case status >= 400:
			reqLog.Warn("HTTP request", fields...)
		default:
			reqLog.Info("HTTP request", fields...)
		}
	}
}

// Logger returns the request-scoped logger, or fallback when
// LoggingMiddleware is not installed.
func Logger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, exists := c.Get(loggerKey); exists {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return fallback
}
