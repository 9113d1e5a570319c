package server

import (
	"github.com/maypok86/otter/v2"

	"github.com/blacktop/socialshare/internal/config"
)

// linkCache memoizes resolved links by network and raw query. A nil cache
// is disabled.
type linkCache struct {
	cache *otter.Cache[string, string]
}

func newLinkCache(cfg config.CacheConfig) *linkCache {
	if cfg.Size <= 0 {
		return nil
	}
	opts := &otter.Options[string, string]{MaximumSize: cfg.Size}
	if cfg.TTL > 0 {
		opts.ExpiryCalculator = otter.ExpiryWriting[string, string](cfg.TTL)
	}
	return &linkCache{cache: otter.Must(opts)}
}

func (c *linkCache) get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.cache.GetIfPresent(key)
}

func (c *linkCache) set(key, link string) {
	if c == nil {
		return
	}
	c.cache.Set(key, link)
}
