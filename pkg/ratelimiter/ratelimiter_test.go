package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitWithin(tb *TokenBucket, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return tb.Wait(ctx)
}

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(2, 1)

	assert.NoError(t, waitWithin(tb, 10*time.Millisecond))
	assert.NoError(t, waitWithin(tb, 10*time.Millisecond))
	assert.Error(t, waitWithin(tb, 10*time.Millisecond))
}

func TestTokenBucketDefaults(t *testing.T) {
	tb := NewTokenBucket(0, -1)
	assert.NoError(t, waitWithin(tb, 10*time.Millisecond))
}

func TestTokenBucketWaitHonoursContext(t *testing.T) {
	tb := NewTokenBucket(1, 1)
	require.NoError(t, tb.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, tb.Wait(ctx))
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(1, 50)
	require.NoError(t, tb.Wait(context.Background()))

	assert.NoError(t, waitWithin(tb, time.Second))
}
