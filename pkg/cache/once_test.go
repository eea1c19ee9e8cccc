package cache_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/cache"
)

func TestOnce_Basic(t *testing.T) {
	t.Parallel()

	t.Run("loads on first get", func(t *testing.T) {
		t.Parallel()
		c := cache.NewOnce[string, int]()

		val := c.Get("a", func() int { return 1 })
		assert.Equal(t, 1, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("second get does not reload", func(t *testing.T) {
		t.Parallel()
		c := cache.NewOnce[string, int]()

		c.Get("a", func() int { return 1 })
		val := c.Get("a", func() int { return 2 })

		assert.Equal(t, 1, val)
		assert.Equal(t, int64(1), c.Loads())
	})

	t.Run("peek does not load", func(t *testing.T) {
		t.Parallel()
		c := cache.NewOnce[string, int]()

		_, ok := c.Peek("a")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())

		c.Get("a", func() int { return 7 })
		val, ok := c.Peek("a")
		assert.True(t, ok)
		assert.Equal(t, 7, val)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		c := cache.NewOnce[string, string]()

		assert.Equal(t, "x", c.Get("a", func() string { return "x" }))
		assert.Equal(t, "y", c.Get("b", func() string { return "y" }))
		assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())
	})
}

func TestOnce_Forget(t *testing.T) {
	t.Parallel()

	c := cache.NewOnce[string, int]()
	c.Get("a", func() int { return 1 })

	assert.True(t, c.Forget("a"))
	assert.False(t, c.Forget("a"))

	_, ok := c.Peek("a")
	assert.False(t, ok)

	val := c.Get("a", func() int { return 2 })
	assert.Equal(t, 2, val)
	assert.Equal(t, int64(2), c.Loads())
}

func TestOnce_ConcurrentLoadRunsOnce(t *testing.T) {
	t.Parallel()

	c := cache.NewOnce[string, int]()
	var calls atomic.Int32
	release := make(chan struct{})

	const workers = 50
	results := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get("k", func() int {
				calls.Add(1)
				<-release
				return 42
			})
		}(i)
	}

	// Give all goroutines time to pile up behind the in-flight load.
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Peek("k")
	assert.False(t, ok, "value must not be visible while loading")
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 42, r)
	}
}

func TestOnce_DifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	c := cache.NewOnce[string, int]()
	block := make(chan struct{})
	defer close(block)

	go c.Get("slow", func() int {
		<-block
		return 1
	})

	done := make(chan int, 1)
	go func() { done <- c.Get("fast", func() int { return 2 }) }()

	select {
	case v := <-done:
		require.Equal(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("load for another key blocked")
	}
}

func TestOnce_PanickingLoad(t *testing.T) {
	t.Parallel()

	c := cache.NewOnce[string, int]()
	assert.PanicsWithValue(t, "boom", func() {
		c.Get("k", func() int { panic("boom") })
	})

	v, ok := c.Peek("k")
	assert.True(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.Loads())

	var calls atomic.Int32
	assert.Zero(t, c.Get("k", func() int {
		calls.Add(1)
		return 7
	}))
	assert.Equal(t, int32(0), calls.Load())

	require.True(t, c.Forget("k"))
	assert.Equal(t, 7, c.Get("k", func() int { return 7 }))
}
