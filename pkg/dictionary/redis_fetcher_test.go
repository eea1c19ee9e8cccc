package dictionary_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
)

type fakeRedis struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttl     map[string]time.Duration
	getErr  error
	setErr  error
	setHits int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (r *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return redis.NewStringResult("", r.getErr)
	}
	v, ok := r.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (r *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setHits++
	if r.setErr != nil {
		return redis.NewStatusResult("", r.setErr)
	}
	r.data[key] = value.([]byte)
	r.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func countingFetcher(body string, err error) (dictionary.Fetcher, *atomic.Int32) {
	var calls atomic.Int32
	return dictionary.FetcherFunc(func(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return []byte(body), nil
	}), &calls
}

func TestNewRedisFetcher_Validation(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewRedisFetcher(nil, newFakeRedis())
	assert.ErrorIs(t, err, dictionary.ErrNilFetcher)

	next, _ := countingFetcher("{}", nil)
	_, err = dictionary.NewRedisFetcher(next, nil)
	assert.ErrorIs(t, err, dictionary.ErrNilRedisClient)
}

func TestRedisFetcher(t *testing.T) {
	t.Parallel()

	t.Run("stores upstream body and serves it afterwards", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		next, calls := countingFetcher(`{"item.minecraft.diamond": "Diamond"}`, nil)
		f, err := dictionary.NewRedisFetcher(next, rdb, dictionary.WithRedisTTL(time.Hour))
		require.NoError(t, err)

		key := f.Key(catalog.EnUS, testVersion)
		assert.Equal(t, "polyglot:dict:1.20.4:en_us", key)

		for range 3 {
			body, err := f.Fetch(context.Background(), catalog.EnUS, testVersion)
			require.NoError(t, err)
			assert.JSONEq(t, `{"item.minecraft.diamond": "Diamond"}`, string(body))
		}

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, time.Hour, rdb.ttl[key])
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		next, _ := countingFetcher("{}", nil)
		f, err := dictionary.NewRedisFetcher(next, newFakeRedis(), dictionary.WithRedisKeyPrefix("mc"))
		require.NoError(t, err)
		assert.Equal(t, "mc:1.20.4:ru_ru", f.Key(catalog.RuRU, testVersion))
	})

	t.Run("redis read failure is bypassed", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		rdb.getErr = errors.New("connection refused")
		next, calls := countingFetcher("{}", nil)
		f, err := dictionary.NewRedisFetcher(next, rdb)
		require.NoError(t, err)

		body, err := f.Fetch(context.Background(), catalog.EnUS, testVersion)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(body))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("redis write failure is bypassed", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		rdb.setErr = errors.New("read only replica")
		next, _ := countingFetcher("{}", nil)
		f, err := dictionary.NewRedisFetcher(next, rdb)
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), catalog.EnUS, testVersion)
		require.NoError(t, err)
		assert.Equal(t, 1, rdb.setHits)
	})

	t.Run("upstream failure is not stored", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		next, _ := countingFetcher("", dictionary.ErrFetch)
		f, err := dictionary.NewRedisFetcher(next, rdb)
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), catalog.EnUS, testVersion)
		assert.ErrorIs(t, err, dictionary.ErrFetch)
		assert.Equal(t, 0, rdb.setHits)
	})
}
