// Package ratelimit bounds request volume per (action, identifier) inside a
// rolling window. It fronts the unauthenticated scheduling endpoints and is
// an abuse-mitigation heuristic, not a durable ledger: counters live in the
// configured store and reset on restart (memory backend) or expire on their
// own (redis backend).
package ratelimit

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"talent/shared"
	"talent/shared/failure"
)

// Known actions with named presets. Actions without a preset fall back to
// DefaultConfig.
const (
	ActionPublicBooking      = "publicBooking"
	ActionPublicScheduleView = "publicScheduleView"
	ActionPublicForm         = "publicForm"
	ActionAIGeneration       = "aiGeneration"
)

// Store backends selectable through configuration.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	MaxRequests int
	Window      time.Duration
}

// DefaultConfig applies to any action without a named preset.
var DefaultConfig = Config{MaxRequests: 30, Window: time.Minute}

var presets = map[string]Config{
	ActionPublicBooking:      {MaxRequests: 5, Window: time.Minute},
	ActionPublicScheduleView: {MaxRequests: 30, Window: time.Minute},
	ActionPublicForm:         {MaxRequests: 10, Window: time.Minute},
	ActionAIGeneration:       {MaxRequests: 3, Window: time.Minute},
}

// ConfigFor returns the preset for the given action, or DefaultConfig when
// the action has no named preset.
func ConfigFor(action string) Config {
	if cfg, ok := presets[action]; ok {
		return cfg
	}

	return DefaultConfig
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store is the swappable counter backend. The in-memory store serves a
// single-process deployment; the redis store shares counters across
// replicas so horizontal scaling is a configuration change, not a rewrite.
type Store interface {
	Hit(ctx context.Context, key string, cfg Config) (Result, error)
}

type Limiter interface {
	// Check consumes one request from the quota of (action, identifier).
	// It returns the remaining quota on success and a failure.TooManyRequests
	// carrying the reset hint when the quota is exhausted. Store failures
	// fail open: an unreachable counter backend must not take the public
	// endpoints down with it.
	Check(ctx context.Context, action, identifier string) (Result, error)
}

type limiterImpl struct {
	store Store
}

func New(store Store) Limiter {
	return &limiterImpl{store: store}
}

func (l *limiterImpl) Check(ctx context.Context, action, identifier string) (Result, error) {
	cfg := ConfigFor(action)
	key := shared.BuildCacheKey(action, identifier)

	res, err := l.store.Hit(ctx, key, cfg)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("rate limit store unavailable, allowing request")

		return Result{Allowed: true, Limit: cfg.MaxRequests, Remaining: cfg.MaxRequests - 1}, nil
	}

	if !res.Allowed {
		retryAfter := int(time.Until(res.ResetAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}

		return res, failure.TooManyRequests(retryAfter) //nolint:wrapcheck
	}

	return res, nil
}
