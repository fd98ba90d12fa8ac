package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

var _ ContentCache = &MemoryCache{}

// NewMemoryCache creates an in-process cache. Entries expire after ttl and
// a janitor purges expired items every 10 minutes, so memory growth is
// bounded by the 24h window rather than truly unbounded.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (m *MemoryCache) Get(_ context.Context, url string) (string, bool) {
	if x, found := m.cache.Get(url); found {
		return x.(string), true
	}
	return "", false
}

func (m *MemoryCache) Put(_ context.Context, url string, html string) {
	m.cache.Set(url, html, gocache.DefaultExpiration)
}
