package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTakeTokenDepletesBurst(t *testing.T) {
	tb := NewTokenBucket(3, 1)

	assert.True(t, tb.TakeToken())
	assert.True(t, tb.TakeToken())
	assert.True(t, tb.TakeToken())
	assert.False(t, tb.TakeToken(), "burst capacity exhausted")
}

func TestTokensRefill(t *testing.T) {
	tb := NewTokenBucket(1, 100)

	assert.True(t, tb.TakeToken())
	assert.False(t, tb.TakeToken())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.TakeToken(), "tokens refill over time")
}

func TestRefillCapsAtCapacity(t *testing.T) {
	tb := NewTokenBucket(2, 5)

	time.Sleep(20 * time.Millisecond)
	assert.True(t, tb.TakeToken())
	assert.True(t, tb.TakeToken())
	assert.False(t, tb.TakeToken(), "refill never exceeds capacity")
}

func TestWaitBlocksUntilToken(t *testing.T) {
	tb := NewTokenBucket(1, 50)

	tb.Wait() // consumes the initial token

	start := time.Now()
	tb.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestNonPositiveArgumentsClamped(t *testing.T) {
	tb := NewTokenBucket(0, -1)
	assert.True(t, tb.TakeToken())
}
