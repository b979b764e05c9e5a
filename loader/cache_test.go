package loader

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fx/raster"
)

// shardKeys returns n distinct keys that land in one shard.
func shardKeys(c *Cache, n int) []string {
	var keys []string
	target := c.shard("k0")
	for i := 0; len(keys) < n; i++ {
		k := fmt.Sprintf("k%d", i)
		if c.shard(k) == target {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache(4)
	r := raster.Empty(raster.FormatRGBA8)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", r)
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, r, got)

	s := c.Stats()
	assert.Equal(t, 1, s.Len)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, 4*shardCount, s.Capacity)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	keys := shardKeys(c, 3)
	r := raster.Empty(raster.FormatRGBA8)

	c.Set(keys[0], r)
	c.Set(keys[1], r)
	_, _ = c.Get(keys[0]) // keys[1] is now the oldest
	c.Set(keys[2], r)

	_, ok := c.Get(keys[1])
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get(keys[0])
	assert.True(t, ok)
	_, ok = c.Get(keys[2])
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCacheShardsAreIndependent(t *testing.T) {
	c := NewCache(1)
	r := raster.Empty(raster.FormatRGBA8)

	// One key per shard fits even with capacity 1.
	seen := make(map[*shard]bool)
	for i := 0; len(seen) < shardCount; i++ {
		k := fmt.Sprintf("u%d", i)
		if s := c.shard(k); !seen[s] {
			seen[s] = true
			c.Set(k, r)
		}
	}
	assert.Equal(t, shardCount, c.Len())
	assert.Zero(t, c.Stats().Evictions)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache(0)
	r := raster.Empty(raster.FormatRGBA8)
	c.Set("a", r)
	c.Set("b", r)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(8)
	r := raster.Empty(raster.FormatRGBA8)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprintf("g%d-%d", g, i%20)
				c.Set(k, r)
				_, _ = c.Get(k)
				if i%7 == 0 {
					c.Delete(k)
				}
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 8*shardCount)
}
