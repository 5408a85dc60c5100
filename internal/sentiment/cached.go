package sentiment

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WishEval_Go/internal/metrics"
)

// CacheStats reports classifier cache usage.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// Cached memoizes successful verdicts keyed by provider and text.
// Errors are never cached.
type Cached struct {
	next   Classifier
	lru    *expirable.LRU[string, Result]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached wraps next with an expiring LRU cache.
func NewCached(next Classifier, size int, ttl time.Duration) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		next: next,
		lru:  expirable.NewLRU[string, Result](size, nil, ttl),
	}
}

func (c *Cached) Name() string { return c.next.Name() }

func (c *Cached) Classify(ctx context.Context, text string) (Result, error) {
	key := c.cacheKey(text)
	if r, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		metrics.ClassifierCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return r, nil
	}
	c.misses.Add(1)
	metrics.ClassifierCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	r, err := c.next.Classify(ctx, text)
	if err != nil {
		return Result{}, err
	}
	c.lru.Add(key, r)
	return r, nil
}

// Stats returns hit and miss counters.
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// Purge empties the cache.
func (c *Cached) Purge() {
	c.lru.Purge()
}

func (c *Cached) cacheKey(text string) string {
	h := sha1.New()
	_, _ = io.WriteString(h, c.next.Name())
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))
}
