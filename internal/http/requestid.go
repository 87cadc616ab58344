package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is echoed on every response for log correlation.
	RequestIDHeader = "X-Request-ID"

	contextKeyRequestID = "request_id"
)

// RequestIDMiddleware assigns each request a UUID, unless the client
// already supplied one, and exposes it in the response headers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request's correlation ID, or "" when the
// middleware is not installed.
func RequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}
