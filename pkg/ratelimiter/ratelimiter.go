// Package ratelimiter implements a token bucket rate limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiter is the limiter interface shared by API clients.
type RateLimiter interface {
	TakeToken() bool
	Wait()
}

// TokenBucket refills at a fixed per-second rate up to a capacity.
// A zero-valued bucket is not usable; construct with NewTokenBucket.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewTokenBucket creates a full bucket with the given capacity and
// refill rate (tokens per second). Non-positive values are clamped to 1.
func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	if capacity <= 0 {
		capacity = 1
	}
	if refillRate <= 0 {
		refillRate = 1
	}
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: float64(refillRate),
		lastRefill: time.Now(),
	}
}

// TakeToken consumes one token if available and reports whether it did.
func (tb *TokenBucket) TakeToken() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	tb.lastRefill = now

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available.
func (tb *TokenBucket) Wait() {
	interval := time.Duration(float64(time.Second) / tb.refillRate)
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	for !tb.TakeToken() {
		time.Sleep(interval)
	}
}
