package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/tracing"
)

const requestIDKey = "requestID"

// RequestID propagates the caller's X-Request-ID or assigns a new one, and stores it on
// the request context so that database logs carry it too
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(tracing.RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(tracing.RequestIDHeader, id)
		c.Request = c.Request.WithContext(tracing.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
