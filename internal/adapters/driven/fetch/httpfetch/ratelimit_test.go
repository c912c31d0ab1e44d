package httpfetch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_FirstWaitImmediate(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_Backoff(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	rl.Backoff(80 * time.Millisecond)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
}

func TestRateLimiter_BackoffIgnoresNonPositive(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	rl.Backoff(0)
	rl.Backoff(-time.Second)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))

	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	rl.Backoff(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
