package cache

import (
	"context"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"

	"github.com/google/uuid"
)

type DatabaseCache struct {
	repo contract.CachedContentRepository
	ttl  time.Duration
}

var _ ContentCache = &DatabaseCache{}

// NewDatabaseCache persists fetched pages through the cached-content
// repository so entries survive restarts and are visible to every process
// sharing the database.
func NewDatabaseCache(repo contract.CachedContentRepository, ttl time.Duration) *DatabaseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DatabaseCache{
		repo: repo,
		ttl:  ttl,
	}
}

func (d *DatabaseCache) Get(ctx context.Context, url string) (string, bool) {
	cached, err := d.repo.FindByUrl(ctx, url)
	if err != nil || cached == nil {
		return "", false
	}
	// Expiration is evaluated per-call; expired rows are evicted here
	// rather than by a background sweep.
	if time.Now().After(cached.ExpiresAt) {
		_ = d.repo.DeleteByUrl(ctx, url)
		return "", false
	}
	return cached.Content, true
}

func (d *DatabaseCache) Put(ctx context.Context, url string, html string) {
	now := time.Now()
	_ = d.repo.Upsert(ctx, &entity.CachedContent{
		Id:        uuid.New(),
		Url:       url,
		Content:   html,
		FetchedAt: now,
		ExpiresAt: now.Add(d.ttl),
	})
}
