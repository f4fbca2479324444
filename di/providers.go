package di

import (
	"talent/config"
	"talent/shared/ratelimit"

	goRedis "github.com/redis/go-redis/v9"
)

// provideRateLimitStore selects the limiter backend. Redis shares counters
// across replicas; memory is enough for a single-process deployment.
func provideRateLimitStore(cfg *config.Config, client *goRedis.Client) ratelimit.Store {
	if cfg.App.RateLimiter.Backend == ratelimit.BackendRedis {
		return ratelimit.NewRedisStore(client)
	}

	return ratelimit.NewMemoryStore()
}
