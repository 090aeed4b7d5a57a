package rate_limiter

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window counter keyed by client identifier. Stale
// entries are pruned on access, no background sweeper.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) prune(key string, now time.Time) {
	windowStart := now.Add(-rl.window)
	kept := rl.attempts[key][:0]
	for _, t := range rl.attempts[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(rl.attempts, key)
	} else {
		rl.attempts[key] = kept
	}
}

// IsAllowed records the attempt and reports whether the client is still
// under the limit.
func (rl *RateLimiter) IsAllowed(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.prune(key, now)

	if len(rl.attempts[key]) >= rl.limit {
		return false
	}

	rl.attempts[key] = append(rl.attempts[key], now)
	return true
}

func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(key, time.Now())
	return rl.limit - len(rl.attempts[key])
}
