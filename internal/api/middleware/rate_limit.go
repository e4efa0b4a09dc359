package middleware

import (
	"fmt"
	"time"

	"filmorate-go/internal/api/response"
	"filmorate-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

const rateLimitPrefix = "filmorate:ratelimit"

// RateLimit 按客户端 IP 和路由限流，每秒最多 rps 次
// client 为空时使用进程内存储
func RateLimit(client *redis.Client, rps int64) (gin.HandlerFunc, error) {
	store, err := newLimiterStore(client)
	if err != nil {
		return nil, err
	}

	rate := limiter.Rate{Period: time.Second, Limit: rps}
	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(true))

	return mgin.NewMiddleware(instance,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			response.TooManyRequests(c, "请求过于频繁，请稍后重试")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// 限流存储不可用时放行
			logger.Warn("Rate limiter unavailable", zap.Error(err))
			c.Next()
		}),
	), nil
}

func newLimiterStore(client *redis.Client) (limiter.Store, error) {
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix}), nil
	}
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: rateLimitPrefix})
	if err != nil {
		return nil, fmt.Errorf("create redis limiter store: %w", err)
	}
	return store, nil
}
