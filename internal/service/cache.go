package service

import (
	"context"
	"time"

	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
)

// RankingCache 缓存排行与推荐计算出的电影 ID 列表
// 每次写入喜欢、好友、影评评价或电影变更时递增代数，旧代数的条目不再被读取
type RankingCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, key string) ([]int64, bool, error)
	Set(ctx context.Context, gen int64, key string, ids []int64) error
	Invalidate(ctx context.Context) error
}

const cacheTimeout = 500 * time.Millisecond

// rankingCache 缓存不可用时直接回源
type rankingCache struct {
	c RankingCache
}

func (r rankingCache) load(key string, compute func() ([]int64, error)) ([]int64, error) {
	if r.c == nil {
		return compute()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	// 先读代数再计算，计算期间发生的写入会使本次结果落在旧代数下
	gen, err := r.c.Generation(ctx)
	if err != nil {
		logger.Warn("Ranking cache unavailable", zap.String("key", key), zap.Error(err))
		return compute()
	}

	if ids, ok, err := r.c.Get(ctx, gen, key); err != nil {
		logger.Warn("Failed to read ranking cache", zap.String("key", key), zap.Error(err))
	} else if ok {
		return ids, nil
	}

	ids, err := compute()
	if err != nil {
		return nil, err
	}

	setCtx, setCancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer setCancel()
	if err := r.c.Set(setCtx, gen, key, ids); err != nil {
		logger.Warn("Failed to write ranking cache", zap.String("key", key), zap.Error(err))
	}
	return ids, nil
}

func (r rankingCache) invalidate() {
	if r.c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	if err := r.c.Invalidate(ctx); err != nil {
		logger.Error("Failed to invalidate ranking cache", zap.Error(err))
	}
}
