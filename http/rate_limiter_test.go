package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Refill(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ok, _ := limiter.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = limiter.Allow("10.0.0.1")
	assert.True(t, ok)

	now = now.Add(20 * time.Second)
	ok, wait := limiter.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, wait)

	ok, _ = limiter.Allow("10.0.0.2")
	assert.True(t, ok, "clients have separate buckets")

	now = now.Add(40 * time.Second)
	ok, _ = limiter.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(bucketCleanupThreshold + time.Second)
	limiter.cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.clients)
}
