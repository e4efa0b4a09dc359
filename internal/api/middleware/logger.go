package middleware

import (
	"time"

	"filmorate-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger Gin日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("body_size", c.Writer.Size()),
		}

		// 5xx 记为错误，其余按访问日志记录
		if c.Writer.Status() >= 500 {
			logger.Error("HTTP Request", fields...)
		} else {
			logger.Info("HTTP Request", fields...)
		}

		for _, e := range c.Errors {
			logger.Error("Request Error",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("error", e.Error()),
				zap.Any("type", e.Type),
			)
		}
	}
}
