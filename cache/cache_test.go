package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/TFMV/cyclomatic/cache"
	"github.com/TFMV/cyclomatic/types"
	"github.com/stretchr/testify/assert"
)

func TestResultCache(t *testing.T) {
	c := cache.NewResultCache(10)

	report := types.Report{
		Summary: types.Summary{TotalMethods: 1, TotalComplexity: 3},
		Methods: []types.Method{{Name: "f", Line: 1, Complexity: 3, Status: "simple", NestingDepth: 1}},
	}

	_, ok := c.Get("java", "code")
	assert.False(t, ok)

	c.Put("java", "code", report)

	got, ok := c.Get("java", "code")
	assert.True(t, ok)
	assert.Equal(t, report, got)

	// Same code under a different language is a distinct entry.
	_, ok = c.Get("python", "code")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("java", "code")
	assert.False(t, ok)
}

func TestResultCacheEviction(t *testing.T) {
	c := cache.NewResultCache(2)

	c.Put("java", "a", types.Report{})
	c.Put("java", "b", types.Report{})
	c.Put("java", "c", types.Report{})

	// Oldest entry is evicted once capacity is exceeded.
	_, ok := c.Get("java", "a")
	assert.False(t, ok)
	_, ok = c.Get("java", "c")
	assert.True(t, ok)
}

// Concurrent hits on the same keys mutate the LRU recency list; run with
// the race detector to catch any locking regression in Get.
func TestResultCacheConcurrentHits(t *testing.T) {
	c := cache.NewResultCache(10)
	for i := 0; i < 2; i++ {
		c.Put("java", fmt.Sprintf("snippet-%d", i), types.Report{
			Summary: types.Summary{TotalMethods: 1, TotalComplexity: i + 1},
		})
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				code := fmt.Sprintf("snippet-%d", i%2)
				report, ok := c.Get("java", code)
				assert.True(t, ok)
				assert.Equal(t, i%2+1, report.Summary.TotalComplexity)
			}
		}()
	}
	wg.Wait()
}
