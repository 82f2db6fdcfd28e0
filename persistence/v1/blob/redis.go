package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis is the redis backed Store, the default production driver.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedis(client *redis.Client, operationTimeout time.Duration) *Redis {
	return &Redis{client: client, timeout: operationTimeout}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	opCtx, opCancel := context.WithTimeout(ctx, r.timeout)
	defer opCancel()

	value, err := r.client.Get(opCtx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.SetTTL(ctx, key, value, 0)
}

func (r *Redis) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	opCtx, opCancel := context.WithTimeout(ctx, r.timeout)
	defer opCancel()

	if err := r.client.Set(opCtx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Del(ctx context.Context, key string) error {
	opCtx, opCancel := context.WithTimeout(ctx, r.timeout)
	defer opCancel()

	if err := r.client.Del(opCtx, key).Err(); err != nil {
		return fmt.Errorf("failed to del %s: %w", key, err)
	}
	return nil
}
