package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filmorate-go/internal/config"
	"filmorate-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Client *redis.Client

var errNotInitialized = errors.New("redis client not initialized")

// Init 初始化Redis客户端
// 连接失败时 Client 置空，调用方据此关闭缓存并让限流退回内存存储
func Init(cfg *config.RedisConfig) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	Client = client

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return nil
}

// Ping 检查Redis是否可用，供健康检查使用
func Ping(ctx context.Context) error {
	if Client == nil {
		return errNotInitialized
	}
	return Client.Ping(ctx).Err()
}

// Close 关闭Redis连接
func Close() error {
	if Client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return Client.Close()
}

// Get 获取Redis客户端实例，未连接时返回 nil
func Get() *redis.Client {
	return Client
}
