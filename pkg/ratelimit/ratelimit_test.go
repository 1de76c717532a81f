package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/odinbook/pkg/logger"
)

func TestIPRateLimiter(t *testing.T) {
	ctx := context.Background()
	l := NewIPRateLimiter(1, 2, logger.Nop())

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok, "third request within the burst window must be rejected")

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "other keys keep their own bucket")
}

func TestIPRateLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1, logger.Nop())
	l.now = func() time.Time { return now }

	l.GetLimiter("old")
	now = now.Add(time.Hour)
	l.GetLimiter("fresh")

	assert.Equal(t, 1, l.Prune(10*time.Minute))
	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "fresh")
}

func TestWindowFor(t *testing.T) {
	assert.Equal(t, 2*time.Second, WindowFor(5, 10))
	assert.Equal(t, time.Second, WindowFor(0, 10))
	assert.Equal(t, time.Second, WindowFor(5, 0))
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	l := NewRedisLimiter(nil, 10, 2*time.Second)
	l.now = func() time.Time { return time.Unix(10, 0) }
	assert.Equal(t, "ratelimit:ip:5", l.windowKey("ip"))
}

func TestRedisLimiter_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})
	defer rdb.Close()

	l := NewRedisLimiter(rdb, 10, time.Second)
	ok, err := l.Allow(context.Background(), "1.2.3.4")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestConnect_Fail(t *testing.T) {
	client, err := Connect(context.Background(), "localhost:1", "")
	assert.Error(t, err)
	assert.Nil(t, client)

	client, err = Connect(context.Background(), "redis://%zz", "")
	assert.Error(t, err)
	assert.Nil(t, client)
}
