package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/polyglot/pkg/redis"
)

type pingerFunc func(ctx context.Context) *goredis.StatusCmd

func (f pingerFunc) Ping(ctx context.Context) *goredis.StatusCmd { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := redis.Healthcheck(pingerFunc(func(context.Context) *goredis.StatusCmd {
		return goredis.NewStatusResult("PONG", nil)
	}))
	assert.NoError(t, ok(context.Background()))

	boom := errors.New("connection refused")
	failing := redis.Healthcheck(pingerFunc(func(context.Context) *goredis.StatusCmd {
		return goredis.NewStatusResult("", boom)
	}))
	err := failing(context.Background())
	assert.ErrorIs(t, err, redis.ErrUnhealthy)
	assert.ErrorIs(t, err, boom)
}

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrMissingURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrInvalidURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrNotReady)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}
