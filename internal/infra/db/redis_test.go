package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/finance-tracker/planner/config"
)

func TestNewRedisClient(t *testing.T) {
	ctx := context.Background()

	t.Run("empty url disables redis", func(t *testing.T) {
		client, err := NewRedisClient(ctx, &config.RedisConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client != nil {
			t.Error("expected nil client")
		}
	})

	t.Run("connects and selects db", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewRedisClient(ctx, &config.RedisConfig{URL: "redis://" + mr.Addr(), DB: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		t.Cleanup(func() { _ = client.Close() })

		if err := client.Set(ctx, "k", "v", 0).Err(); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		mr.Select(2)
		if got, _ := mr.Get("k"); got != "v" {
			t.Errorf("expected value in db 2, got %q", got)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := NewRedisClient(ctx, &config.RedisConfig{URL: "://nope"}); err == nil {
			t.Error("expected error for invalid url")
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		if _, err := NewRedisClient(ctx, &config.RedisConfig{URL: "redis://" + addr}); err == nil {
			t.Error("expected error for unreachable server")
		}
	})
}
