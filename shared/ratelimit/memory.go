package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is the number of hits between opportunistic sweeps of
// expired buckets. Eviction is lazy and best-effort: it bounds memory for
// normal traffic without a background goroutine, but does not guarantee a
// bound under adversarial key cardinality.
const sweepInterval = 256

type bucket struct {
	count       int
	windowStart time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	hits    int
	now     func() time.Time
}

// NewMemoryStore returns the single-process counter backend. State is
// process-wide, starts empty, and is never torn down; a restart resets all
// counters.
func NewMemoryStore() Store {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock injects the time source, which tests use to
// advance windows deterministically.
func NewMemoryStoreWithClock(now func() time.Time) Store {
	return &memoryStore{
		buckets: make(map[string]*bucket),
		now:     now,
	}
}

func (s *memoryStore) Hit(_ context.Context, key string, cfg Config) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.hits++
	if s.hits >= sweepInterval {
		s.hits = 0
		s.sweep(now, cfg.Window)
	}

	b, ok := s.buckets[key]
	if !ok || now.Sub(b.windowStart) >= cfg.Window {
		s.buckets[key] = &bucket{count: 1, windowStart: now}

		return Result{
			Allowed:   true,
			Limit:     cfg.MaxRequests,
			Remaining: cfg.MaxRequests - 1,
			ResetAt:   now.Add(cfg.Window),
		}, nil
	}

	b.count++

	resetAt := b.windowStart.Add(cfg.Window)

	if b.count > cfg.MaxRequests {
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
		Remaining: cfg.MaxRequests - b.count,
		ResetAt:   resetAt,
	}, nil
}

// sweep drops buckets whose window has fully elapsed. Buckets created under
// a different (longer) window than the one passed in survive until a later
// sweep; that staleness is acceptable for an abuse heuristic.
func (s *memoryStore) sweep(now time.Time, window time.Duration) {
	for key, b := range s.buckets {
		if now.Sub(b.windowStart) >= window {
			delete(s.buckets, key)
		}
	}
}
