package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerforge/api/internal/application/service"
)

type redisTokenDenylist struct {
	client *redis.Client
}

func NewRedisTokenDenylist(client *redis.Client) service.TokenDenylist {
	return &redisTokenDenylist{client: client}
}

func denylistKey(jti string) string {
	return "auth:denylist:" + jti
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistKey(jti), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, denylistKey(jti)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return true, nil
}
