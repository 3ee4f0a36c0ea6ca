package editor

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCacheTTL is how long a detection result is reused.
const DefaultCacheTTL = time.Minute

const detectKey = "detected"

// CachedDetector memoizes detection results for a long-running process.
type CachedDetector struct {
	inner Availability
	cache *expirable.LRU[string, []Kind]
}

// NewCachedDetector wraps inner with an expiring cache.
func NewCachedDetector(inner Availability, ttl time.Duration) *CachedDetector {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedDetector{
		inner: inner,
		cache: expirable.NewLRU[string, []Kind](1, nil, ttl),
	}
}

// DetectAvailable returns cached results when fresh, otherwise probes.
func (c *CachedDetector) DetectAvailable(ctx context.Context) []Kind {
	if kinds, ok := c.cache.Get(detectKey); ok {
		return append([]Kind(nil), kinds...)
	}
	kinds := c.inner.DetectAvailable(ctx)
	c.cache.Add(detectKey, kinds)
	return append([]Kind(nil), kinds...)
}

// SelectDefault returns the highest-priority detected editor, or Default.
func (c *CachedDetector) SelectDefault(ctx context.Context) Kind {
	return Preferred(c.DetectAvailable(ctx))
}

// Purge drops the cached result.
func (c *CachedDetector) Purge() {
	c.cache.Purge()
}
