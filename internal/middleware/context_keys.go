package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the key used to store the request ID in the Gin and request contexts.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return GetRequestIDFromCtx(c.Request.Context())
	}
	id, ok := val.(string)
	return id, ok
}

// GetRequestIDFromCtx retrieves the request ID from a request context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
