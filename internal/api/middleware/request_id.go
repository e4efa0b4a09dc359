package middleware

import (
	"filmorate-go/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey 请求 ID 在 gin.Context 中的键
	RequestIDKey = response.RequestIDKey
	// RequestIDHeader 请求 ID 的 HTTP 头
	RequestIDHeader = "X-Request-ID"
)

// RequestID 沿用客户端传入的请求 ID，没有时生成一个，并写回响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
