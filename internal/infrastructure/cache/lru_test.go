package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string, int](3, 0)

	c.Set("a", 1)
	c.Set("b", 2)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, val)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2, 0)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now the oldest
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_UpdateExistingKeepsSize(t *testing.T) {
	c := NewLRU[string, int](2, 0)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 100)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 100, val)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EntriesExpire(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewLRU[string, int](4, time.Minute)
	c.now = clock.now

	c.Set("a", 1)
	clock.advance(30 * time.Second)
	c.Set("b", 2)

	clock.advance(30 * time.Second)
	_, ok := c.Get("a")
	assert.False(t, ok, "a reached its ttl")
	assert.Equal(t, 1, c.Len(), "expired entry is dropped on access")

	val, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	// Set restarts the ttl.
	clock.advance(20 * time.Second)
	c.Set("b", 3)
	clock.advance(50 * time.Second)
	val, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string, int](3, 0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Remove("a")
	c.Remove("unknown")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestLRU_ZeroCapacityHoldsOne(t *testing.T) {
	c := NewLRU[string, int](0, 0)

	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	val, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](100, time.Hour)
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Set(i, i*10)
		}()
		go func() {
			defer wg.Done()
			c.Get(i)
		}()
		go func() {
			defer wg.Done()
			c.Remove(i + 25)
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 50)
}
