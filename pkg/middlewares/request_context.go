package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ct "taskapp/pkg/context"
)

// RequestContextMiddleware seeds a Current holder with the request
// metadata and echoes the request id back to the client. An incoming
// X-Request-ID is honored so ids survive proxy hops.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		current := ct.NewCurrent()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		current.Set("request_id", requestID)
		current.Set("user_agent", c.Request.UserAgent())
		current.Set("ip_address", GetClientIP(c))
		current.Set("method", c.Request.Method)
		current.Set("path", c.Request.URL.Path)

		c.Request = c.Request.WithContext(ct.WithCurrent(c.Request.Context(), current))
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
