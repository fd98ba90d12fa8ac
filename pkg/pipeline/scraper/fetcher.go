package scraper

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/cache"
)

const (
	DefaultUserAgent    = "ForestGPT/1.0 - Educational Project - Rate Limited Bot"
	DefaultFetchTimeout = 10 * time.Second
)

// FetchResult always carries a usable value. Network and timeout failures
// are converted into {HTML:"", Status:500, Err:...} so a batch of fetches
// can fan out without one failure aborting the rest. Callers interpret
// non-2xx statuses as failure themselves.
type FetchResult struct {
	HTML   string
	Status int
	Err    string
}

type Fetcher struct {
	cache     cache.ContentCache
	limiter   Limiter
	client    *http.Client
	userAgent string
	log       logger.ILogger
}

func NewFetcher(contentCache cache.ContentCache, limiter Limiter, timeout time.Duration, log logger.ILogger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		cache:     contentCache,
		limiter:   limiter,
		client:    &http.Client{Timeout: timeout},
		userAgent: DefaultUserAgent,
		log:       log,
	}
}

// Fetch performs a single rate-limited HTTP GET, consulting the cache first
// and populating it on success. It never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) FetchResult {
	// Check cache first
	if html, found := f.cache.Get(ctx, url); found {
		return FetchResult{HTML: html, Status: http.StatusOK}
	}

	// Enforce rate limiting
	if err := f.limiter.Wait(ctx); err != nil {
		return FetchResult{Status: http.StatusInternalServerError, Err: err.Error()}
	}

	normalized := url
	if !strings.HasPrefix(normalized, "http") {
		normalized = "https://" + normalized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
	if err != nil {
		return FetchResult{Status: http.StatusInternalServerError, Err: err.Error()}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("scraper", "fetch failed", map[string]interface{}{"url": url, "error": err.Error()})
		return FetchResult{Status: http.StatusInternalServerError, Err: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warn("scraper", "read body failed", map[string]interface{}{"url": url, "error": err.Error()})
		return FetchResult{Status: http.StatusInternalServerError, Err: err.Error()}
	}

	html := string(body)

	// Cache the content if request was successful
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		f.cache.Put(ctx, url, html)
	}

	return FetchResult{HTML: html, Status: resp.StatusCode}
}
