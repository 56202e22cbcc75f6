package cache

import (
	"context"
	"testing"
	"time"

	"probuilder/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

func TestRevokedSessionKey(t *testing.T) {
	if got := revokedSessionKey("tok-1"); got != "probuilder:session:revoked:tok-1" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestRedisSessionRevocations_ServerDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	revocations := NewRedisSessionRevocations(client)

	if err := revocations.Revoke(context.Background(), "tok-1", 0); err == nil {
		t.Fatalf("expected error with unreachable redis")
	}
	if _, err := revocations.IsRevoked(context.Background(), "tok-1"); err == nil {
		t.Fatalf("expected error with unreachable redis")
	}
}

func TestNewRedisClient_ServerDown(t *testing.T) {
	cfg := config.RedisConfig{Host: "127.0.0.1", Port: 1, DialTimeout: 100 * time.Millisecond, ReadTimeout: 100 * time.Millisecond}
	if _, err := NewRedisClient(context.Background(), cfg); err == nil {
		t.Fatalf("expected ping error")
	}
}
