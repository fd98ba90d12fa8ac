package scraper

import (
	"context"
	"net/http"
	"strings"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/urlgen"
	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"golang.org/x/sync/errgroup"
)

const previewLength = 500

// Bundle aggregates a whole scrape batch: content of every successful page,
// per-URL outcomes for observability, and a fixed-length preview.
type Bundle struct {
	CombinedContent string
	URLStatuses     []store.URLStatus
	Images          []store.Image
	RawSize         int
	Preview         string
}

type pageResult struct {
	url        string
	status     string
	statusCode int
	content    string
	images     []store.Image
}

type Scraper struct {
	fetcher   *Fetcher
	generator *urlgen.Generator
	log       logger.ILogger
}

func NewScraper(fetcher *Fetcher, generator *urlgen.Generator, log logger.ILogger) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		generator: generator,
		log:       log,
	}
}

// Scrape fans out over the generated URL list concurrently. Fetches are in
// flight simultaneously but network dispatch is still serialized by the
// shared rate limiter. A single URL failure is recorded and excluded from
// aggregation; it never fails the batch.
func (s *Scraper) Scrape(ctx context.Context, query string, classification store.Classification) *Bundle {
	urls := s.generator.Generate(query, classification)

	results := make([]pageResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = s.scrapePage(gctx, u)
			return nil
		})
	}
	// Workers only record results, they never return errors.
	_ = g.Wait()

	var combined strings.Builder
	statuses := make([]store.URLStatus, 0, len(results))
	var images []store.Image

	for _, r := range results {
		statuses = append(statuses, store.URLStatus{
			URL:        r.url,
			Status:     r.status,
			StatusCode: r.statusCode,
		})
		if r.status != store.StatusSuccess {
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(r.content)
		images = append(images, r.images...)
	}

	content := combined.String()
	preview := content
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}

	s.log.Info("scraper", "scrape batch complete", map[string]interface{}{
		"urls":     len(urls),
		"raw_size": len(content),
	})

	return &Bundle{
		CombinedContent: content,
		URLStatuses:     statuses,
		Images:          dedupeImages(images),
		RawSize:         len(content),
		Preview:         preview,
	}
}

func (s *Scraper) scrapePage(ctx context.Context, url string) pageResult {
	res := s.fetcher.Fetch(ctx, url)
	if res.Status != http.StatusOK || res.HTML == "" {
		return pageResult{
			url:        url,
			status:     store.StatusError,
			statusCode: res.Status,
		}
	}

	extracted := extractMainContent(res.HTML)
	return pageResult{
		url:        url,
		status:     store.StatusSuccess,
		statusCode: res.Status,
		content:    extracted.html,
		images:     extractImages(extracted.scope, url),
	}
}

func dedupeImages(images []store.Image) []store.Image {
	seen := make(map[string]bool, len(images))
	out := make([]store.Image, 0, len(images))
	for _, img := range images {
		if seen[img.FullURL] {
			continue
		}
		seen[img.FullURL] = true
		out = append(out, img)
	}
	return out
}
