package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RankingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRankingCache(client, time.Minute), mr
}

func TestRankingCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	gen, err := c.Generation(ctx)
	if err != nil {
		t.Fatalf("Generation() error = %v", err)
	}
	if gen != 0 {
		t.Errorf("Generation() = %d, want 0", gen)
	}

	if _, ok, err := c.Get(ctx, gen, "popular"); err != nil || ok {
		t.Fatalf("Get() on empty cache = ok %v, err %v; want miss", ok, err)
	}

	want := []int64{3, 1, 2}
	if err := c.Set(ctx, gen, "popular", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, gen, "popular")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want hit", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %v, want %v", got, want)
	}
}

func TestRankingCache_EmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	if err := c.Set(ctx, 0, "recommend:1", nil); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, 0, "recommend:1")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want hit", ok, err)
	}
	if len(got) != 0 {
		t.Errorf("Get() = %v, want empty", got)
	}
}

func TestRankingCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	if err := c.Set(ctx, 0, "popular", []int64{1}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	gen, err := c.Generation(ctx)
	if err != nil {
		t.Fatalf("Generation() error = %v", err)
	}
	if gen != 1 {
		t.Fatalf("Generation() = %d, want 1", gen)
	}
	if _, ok, _ := c.Get(ctx, gen, "popular"); ok {
		t.Error("Get() hit an entry written before Invalidate")
	}
}

func TestRankingCache_TTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	if err := c.Set(ctx, 0, "popular", []int64{1}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, _ := c.Get(ctx, 0, "popular"); ok {
		t.Error("Get() hit an expired entry")
	}
}

func TestRankingCache_RedisDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	mr.Close()

	if _, err := c.Generation(ctx); err == nil {
		t.Error("Generation() error = nil, want error when redis is down")
	}
}
