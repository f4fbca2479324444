package ratelimit

import (
	"context"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

type redisStore struct {
	client *goRedis.Client
}

// NewRedisStore returns the shared counter backend for horizontally scaled
// deployments. Counters are fixed windows keyed by action:identifier; the
// window boundary is set by the key's expiry on first hit.
func NewRedisStore(client *goRedis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Hit(ctx context.Context, key string, cfg Config) (Result, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = cfg.Window
	}

	resetAt := time.Now().Add(ttl)

	if int(count) > cfg.MaxRequests {
		return Result{
			Allowed:   false,
			Limit:     cfg.MaxRequests,
			Remaining: 0,
			ResetAt:   resetAt,
		}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     cfg.MaxRequests,
		Remaining: cfg.MaxRequests - int(count),
		ResetAt:   resetAt,
	}, nil
}
