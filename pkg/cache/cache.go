package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long fetched pages stay valid (24 hours).
const DefaultTTL = 24 * time.Hour

// ContentCache maps a URL to previously fetched HTML. An entry is never
// returned once its TTL has passed; expired entries are evicted lazily on
// lookup. Implementations are safe for concurrent use.
type ContentCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Put(ctx context.Context, url string, html string)
}
