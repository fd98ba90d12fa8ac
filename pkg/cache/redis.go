package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ContentCache = &RedisCache{}

// NewRedisCache backs the content cache with Redis so multiple processes
// can share one fetch budget against the target site.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (r *RedisCache) Get(ctx context.Context, url string) (string, bool) {
	val, err := r.client.Get(ctx, cacheKey(url)).Result()
	if err != nil {
		// Treat unreachable Redis the same as a miss; the fetcher will
		// just hit the network.
		return "", false
	}
	return val, true
}

func (r *RedisCache) Put(ctx context.Context, url string, html string) {
	r.client.Set(ctx, cacheKey(url), html, r.ttl)
}

func cacheKey(url string) string {
	return "content:" + url
}
