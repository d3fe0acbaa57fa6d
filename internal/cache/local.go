package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Local is an in-process id -> long URL cache.
type Local struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewLocal(maxSizePow2 int, ttl time.Duration) (*Local, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &Local{cache: cache, ttl: ttl}, nil
}

func (c *Local) Get(id string) (string, bool) {
	val, found := c.cache.Get(id)
	if !found {
		return "", false
	}
	return val.(string), true
}

// Set is asynchronous; the entry may be dropped under contention.
func (c *Local) Set(id, longURL string) {
	cost := int64(len(id) + len(longURL))
	if c.ttl > 0 {
		c.cache.SetWithTTL(id, longURL, cost, c.ttl)
		return
	}
	c.cache.Set(id, longURL, cost)
}

// Wait blocks until buffered writes are applied.
func (c *Local) Wait() {
	c.cache.Wait()
}

func (c *Local) Close() {
	c.cache.Close()
}

func (c *Local) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
