package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := newRateLimiter(60, 1)
	defer rl.stop()

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"), "buckets are per client")
	assert.Equal(t, "1", rl.retryAfter())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := newRateLimiter(10, 5)
	rl.stop()
	rl.stop()
	assert.Equal(t, "6", rl.retryAfter())
}
