package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ID generation
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestIDHeader is the header carrying the request correlation id
const RequestIDHeader = "X-Request-ID"

// contextRequestIDKey is the gin context key for the request id
const contextRequestIDKey = "requestID"

// RequestID assigns each request a correlation id, honoring an
// inbound X-Request-ID when the caller already set one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestIDKey, id)           // Store request id in context
		c.Writer.Header().Set(RequestIDHeader, id) // Echo it back to the caller
		c.Next()
	}
}

// GetRequestID returns the correlation id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}

// RequestLogger logs one line per request through logrus
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start timer
		c.Next()            // Process request
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,          // HTTP method
			"path":       c.Request.URL.Path,        // Request path
			"status":     c.Writer.Status(),         // Response status
			"latency":    time.Since(start).String(), // Handler latency
			"request_id": GetRequestID(c),           // Correlation id
		}).Info("request completed")
	}
}
