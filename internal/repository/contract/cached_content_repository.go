package contract

import (
	"context"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
)

type CachedContentRepository interface {
	// FindByUrl returns (nil, nil) when no entry exists.
	FindByUrl(ctx context.Context, url string) (*entity.CachedContent, error)
	Upsert(ctx context.Context, content *entity.CachedContent) error
	DeleteByUrl(ctx context.Context, url string) error
}
