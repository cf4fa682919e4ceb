package middleware

import (
	"ces/pkg/transport"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 为每个请求分配ID，并放入请求上下文供转发到CES
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(transport.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(transport.HeaderRequestID, id)
		c.Request = c.Request.WithContext(transport.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
