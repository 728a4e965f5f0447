package ratelimit

import (
	"sync"
	"time"
)

// PerKeyLimiterConfig configures a PerKeyLimiter instance.
type PerKeyLimiterConfig struct {
	MaxTokens     float64       // Maximum tokens per key (burst capacity)
	RefillRate    float64       // Tokens refilled per second
	CleanupPeriod time.Duration // How often to clean up inactive limiters
}

// PerKeyLimiter tracks rate limits per key (e.g., client IP).
// It creates a separate token bucket for each key and automatically
// cleans up buckets that have been idle long enough to refill completely.
type PerKeyLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedBucket
	config   PerKeyLimiterConfig
	onDrop   func() // Optional callback when a request is dropped
	stopCh   chan struct{}
	stopOnce sync.Once
}

type keyedBucket struct {
	limiter  *Limiter
	lastSeen time.Time
}

// NewPerKeyLimiter creates a new per-key rate limiter.
func NewPerKeyLimiter(cfg PerKeyLimiterConfig) *PerKeyLimiter {
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = 5 * time.Minute
	}

	pkl := &PerKeyLimiter{
		limiters: make(map[string]*keyedBucket),
		config:   cfg,
		stopCh:   make(chan struct{}),
	}

	go pkl.cleanupLoop()

	return pkl
}

// OnDrop sets a callback invoked when a request is dropped due to rate limiting.
func (pkl *PerKeyLimiter) OnDrop(fn func()) {
	pkl.mu.Lock()
	defer pkl.mu.Unlock()
	pkl.onDrop = fn
}

// Allow reports whether a request for the given key may proceed.
func (pkl *PerKeyLimiter) Allow(key string) bool {
	pkl.mu.Lock()
	bucket, ok := pkl.limiters[key]
	if !ok {
		bucket = &keyedBucket{limiter: New(pkl.config.MaxTokens, pkl.config.RefillRate)}
		pkl.limiters[key] = bucket
	}
	bucket.lastSeen = time.Now()
	onDrop := pkl.onDrop
	pkl.mu.Unlock()

	if bucket.limiter.Allow() {
		return true
	}
	if onDrop != nil {
		onDrop()
	}
	return false
}

// ActiveCount returns the number of tracked keys.
func (pkl *PerKeyLimiter) ActiveCount() int {
	pkl.mu.Lock()
	defer pkl.mu.Unlock()
	return len(pkl.limiters)
}

// Stop terminates the background cleanup goroutine.
func (pkl *PerKeyLimiter) Stop() {
	pkl.stopOnce.Do(func() { close(pkl.stopCh) })
}

func (pkl *PerKeyLimiter) cleanupLoop() {
	ticker := time.NewTicker(pkl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pkl.cleanup()
		case <-pkl.stopCh:
			return
		}
	}
}

// cleanup removes buckets idle long enough that they are full again.
func (pkl *PerKeyLimiter) cleanup() {
	// A bucket refills completely after maxTokens/refillRate seconds of idleness.
	idleThreshold := time.Duration(pkl.config.MaxTokens/pkl.config.RefillRate) * time.Second
	if idleThreshold < pkl.config.CleanupPeriod {
		idleThreshold = pkl.config.CleanupPeriod
	}

	pkl.mu.Lock()
	defer pkl.mu.Unlock()

	cutoff := time.Now().Add(-idleThreshold)
	for key, bucket := range pkl.limiters {
		if bucket.lastSeen.Before(cutoff) {
			delete(pkl.limiters, key)
		}
	}
}
