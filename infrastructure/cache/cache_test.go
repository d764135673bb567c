package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/cache"
)

func TestMap_AddGetDelete(t *testing.T) {
	c := cache.New[string, int]()
	c.Add("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	old, ok := c.Delete("a")
	require.True(t, ok)
	require.Equal(t, 1, old)
	_, ok = c.Get("a")
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestMap_GetOrAddBuildsOnce(t *testing.T) {
	c := cache.New[string, *int]()
	builds := 0
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrAdd("k", func() *int {
				mu.Lock()
				builds++
				mu.Unlock()
				n := 7
				return &n
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 1, builds)
	require.ElementsMatch(t, []string{"k"}, c.Keys())
}
