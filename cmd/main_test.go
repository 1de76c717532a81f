package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/odinbook/internal/config"
	"seungpyo.lee/odinbook/pkg/logger"
)

func TestRun(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "localhost:1")
	t.Setenv("APP_ENV", "local")

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- Run(ctx)
	}()

	time.Sleep(500 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	err := Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestOpenStores(t *testing.T) {
	for _, driver := range []string{"memory", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			st, err := openStores(&config.AppConfig{StoreDriver: driver})
			require.NoError(t, err)
			defer st.close()

			n, err := st.users.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}

	_, err := openStores(&config.AppConfig{StoreDriver: "cassandra"})
	assert.Error(t, err)
}

func TestAuthLimiterFallsBackWithoutRedis(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.AppConfig{RedisURL: "localhost:1", RateLimitRPS: 1, RateLimitBurst: 1}
	l, closeFn := authLimiter(ctx, cfg, logger.Nop())
	defer closeFn()

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
}
