package ratelimit_test

import (
	"context"
	"fmt"
	"net/http"
	"talent/shared/failure"
	"talent/shared/ratelimit"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	current time.Time
}

func (c *manualClock) now() time.Time {
	return c.current
}

func (c *manualClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestLimiter_QuotaAndWindowReset(t *testing.T) {
	clock := &manualClock{current: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	limiter := ratelimit.New(ratelimit.NewMemoryStoreWithClock(clock.now))

	ctx := context.Background()

	// publicBooking preset: 5 requests per 60s window.
	for i, wantRemaining := range []int{4, 3, 2, 1, 0} {
		res, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
		require.NoError(t, err, "call %d should be allowed", i+1)
		assert.True(t, res.Allowed)
		assert.Equal(t, wantRemaining, res.Remaining, "call %d remaining", i+1)

		clock.advance(time.Second)
	}

	res, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
	require.Error(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))

	// Advancing past the window start resets the bucket.
	clock.advance(time.Minute)

	res, err = limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	clock := &manualClock{current: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	limiter := ratelimit.New(ratelimit.NewMemoryStoreWithClock(clock.now))

	ctx := context.Background()

	for range 5 {
		_, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
		require.NoError(t, err)
	}

	_, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
	require.Error(t, err)

	res, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "198.51.100.9")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Remaining)
}

func TestLimiter_ActionsAreIndependent(t *testing.T) {
	clock := &manualClock{current: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	limiter := ratelimit.New(ratelimit.NewMemoryStoreWithClock(clock.now))

	ctx := context.Background()

	for range 5 {
		_, err := limiter.Check(ctx, ratelimit.ActionPublicBooking, "203.0.113.7")
		require.NoError(t, err)
	}

	res, err := limiter.Check(ctx, ratelimit.ActionPublicScheduleView, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, 29, res.Remaining)
}

func TestLimiter_UnknownActionUsesDefault(t *testing.T) {
	clock := &manualClock{current: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	limiter := ratelimit.New(ratelimit.NewMemoryStoreWithClock(clock.now))

	res, err := limiter.Check(context.Background(), "somethingElse", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, ratelimit.DefaultConfig.MaxRequests-1, res.Remaining)
	assert.Equal(t, ratelimit.DefaultConfig.MaxRequests, res.Limit)
}

func TestConfigFor(t *testing.T) {
	tests := []struct {
		action string
		want   ratelimit.Config
	}{
		{action: ratelimit.ActionPublicBooking, want: ratelimit.Config{MaxRequests: 5, Window: time.Minute}},
		{action: ratelimit.ActionPublicScheduleView, want: ratelimit.Config{MaxRequests: 30, Window: time.Minute}},
		{action: ratelimit.ActionPublicForm, want: ratelimit.Config{MaxRequests: 10, Window: time.Minute}},
		{action: ratelimit.ActionAIGeneration, want: ratelimit.Config{MaxRequests: 3, Window: time.Minute}},
		{action: "unknown", want: ratelimit.DefaultConfig},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, ratelimit.ConfigFor(tt.action))
		})
	}
}

func TestMemoryStore_SweepsExpiredBuckets(t *testing.T) {
	clock := &manualClock{current: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	store := ratelimit.NewMemoryStoreWithClock(clock.now)

	ctx := context.Background()
	cfg := ratelimit.Config{MaxRequests: 5, Window: time.Minute}

	for i := range 100 {
		_, err := store.Hit(ctx, fmt.Sprintf("publicForm:10.0.0.%d", i), cfg)
		require.NoError(t, err)
	}

	// All previous windows elapse; hammering new keys past the sweep
	// threshold must still leave old buckets reset, not resumed.
	clock.advance(2 * time.Minute)

	for i := range 300 {
		_, err := store.Hit(ctx, fmt.Sprintf("publicForm:10.1.0.%d", i), cfg)
		require.NoError(t, err)
	}

	res, err := store.Hit(ctx, "publicForm:10.0.0.0", cfg)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, cfg.MaxRequests-1, res.Remaining)
}
