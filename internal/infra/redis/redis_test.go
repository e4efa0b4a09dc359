package redis

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"

	"filmorate-go/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func redisConfig(t *testing.T, addr string) *config.RedisConfig {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return &config.RedisConfig{Host: host, Port: port, PoolSize: 2}
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Client = nil })

	t.Run("connects and pings", func(t *testing.T) {
		mr := miniredis.RunT(t)
		if err := Init(redisConfig(t, mr.Addr())); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		defer Close()

		if Get() == nil {
			t.Fatal("Get() = nil after Init")
		}
		if err := Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})

	t.Run("unreachable server leaves client unset", func(t *testing.T) {
		Client = nil
		mr := miniredis.RunT(t)
		cfg := redisConfig(t, mr.Addr())
		mr.Close()

		if err := Init(cfg); err == nil {
			t.Fatal("Init() error = nil, want error")
		}
		if Get() != nil {
			t.Error("Get() != nil after failed Init")
		}
		if err := Ping(context.Background()); !errors.Is(err, errNotInitialized) {
			t.Errorf("Ping() error = %v, want %v", err, errNotInitialized)
		}
	})
}
