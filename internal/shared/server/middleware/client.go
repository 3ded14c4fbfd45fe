package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	clientIDKey    = "clientId"
	clientIDHeader = "X-Client-Id"
	maxClientIDLen = 128
)

// ClientID stores the caller-supplied X-Client-Id header in context. Requests
// without one are identified by IP downstream.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(clientIDHeader))
		if id != "" && len(id) <= maxClientIDLen {
			c.Set(clientIDKey, id)
		}
		c.Next()
	}
}

// ClientIDFromContext fetches the client ID set by the ClientID middleware.
func ClientIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(clientIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// principal identifies the caller for rate limiting.
func principal(c *gin.Context) string {
	if id := ClientIDFromContext(c); id != "" {
		return "client:" + id
	}
	return "ip:" + strings.TrimSpace(c.ClientIP())
}
