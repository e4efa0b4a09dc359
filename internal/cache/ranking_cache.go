// Package cache 基于 Redis 的排行/推荐结果缓存
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "filmorate:ranking"
	generationKey = "gen"
)

// RankingCache 按代数隔离的电影 ID 列表缓存
// Invalidate 递增代数，旧代数的条目随 TTL 过期
type RankingCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, prefix: defaultPrefix, ttl: ttl}
}

func (c *RankingCache) genKey() string {
	return c.prefix + ":" + generationKey
}

func (c *RankingCache) entryKey(gen int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", c.prefix, gen, key)
}

// Generation 当前代数，从未写入时为 0
func (c *RankingCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RankingCache) Get(ctx context.Context, gen int64, key string) ([]int64, bool, error) {
	data, err := c.client.Get(ctx, c.entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false, fmt.Errorf("decode cached ids: %w", err)
	}
	return ids, true, nil
}

func (c *RankingCache) Set(ctx context.Context, gen int64, key string, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.entryKey(gen, key), data, c.ttl).Err()
}

// Invalidate 递增代数，之后的读取不会命中之前写入的条目
func (c *RankingCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, c.genKey()).Err()
}
