package cache

import (
	"context"
	"fmt"
	"time"

	"probuilder/internal/infrastructure/config"
	"probuilder/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const revokedSessionPrefix = "probuilder:session:revoked:"

// NewRedisClient connects and pings the configured Redis server.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr(),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}
	logrus.Infof("Redis connected on %s", cfg.Addr())
	return client, nil
}

// RedisSessionRevocations keeps the ids of logged-out session tokens.
type RedisSessionRevocations struct {
	client *redis.Client
}

var _ interfaces.ISessionRevocations = (*RedisSessionRevocations)(nil)

func NewRedisSessionRevocations(client *redis.Client) *RedisSessionRevocations {
	return &RedisSessionRevocations{client: client}
}

// Revoke stores the token id; ttl 0 keeps it forever.
func (r *RedisSessionRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedSessionKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *RedisSessionRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedSessionKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return n > 0, nil
}

func revokedSessionKey(tokenID string) string {
	return revokedSessionPrefix + tokenID
}
