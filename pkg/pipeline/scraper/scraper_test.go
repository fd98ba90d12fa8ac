package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/cache"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/urlgen"
	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

func newTestScraper(baseURL string) *Scraper {
	fetcher := NewFetcher(cache.NewMemoryCache(time.Minute), NopLimiter{}, 5*time.Second, logger.NewNopLogger())
	return NewScraper(fetcher, urlgen.NewGenerator(baseURL), logger.NewNopLogger())
}

func TestScrapeAggregatesSuccessfulPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(`<html><body><main><p>Welcome to the Forest Service, steward of national forests and grasslands across the country.</p></main></body></html>`))
		case "/visit":
			w.Write([]byte(`<html><body><main><p>Plan your visit to a national forest. Find trails, campgrounds and scenic byways near you today.</p></main></body></html>`))
		case "/recreation":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	classification := store.Classification{
		Category: "Visit",
		BaseURL:  srv.URL + "/visit",
	}

	bundle := s.Scrape(context.Background(), "plan a visit", classification)

	// Every generated URL gets a status entry, success or not
	if len(bundle.URLStatuses) == 0 {
		t.Fatal("expected URL statuses")
	}
	successes, failures := 0, 0
	for _, st := range bundle.URLStatuses {
		switch st.Status {
		case store.StatusSuccess:
			successes++
		case store.StatusError:
			failures++
		default:
			t.Errorf("unexpected status %q for %s", st.Status, st.URL)
		}
	}
	if successes != 2 {
		t.Errorf("successes = %d, want 2", successes)
	}
	if failures == 0 {
		t.Error("expected at least one failed URL")
	}

	if !strings.Contains(bundle.CombinedContent, "steward of national forests") {
		t.Error("combined content missing root page text")
	}
	if !strings.Contains(bundle.CombinedContent, "Plan your visit") {
		t.Error("combined content missing visit page text")
	}
	if bundle.RawSize != len(bundle.CombinedContent) {
		t.Errorf("RawSize = %d, want %d", bundle.RawSize, len(bundle.CombinedContent))
	}
}

func TestScrapeAllFailuresYieldsEmptyBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	classification := store.Classification{Category: "Visit", BaseURL: srv.URL + "/visit"}

	bundle := s.Scrape(context.Background(), "camping", classification)

	if bundle.CombinedContent != "" {
		t.Errorf("CombinedContent = %q, want empty", bundle.CombinedContent)
	}
	for _, st := range bundle.URLStatuses {
		if st.Status != store.StatusError {
			t.Errorf("status for %s = %q, want error", st.URL, st.Status)
		}
	}
}

func TestScrapePreviewIsBounded(t *testing.T) {
	long := strings.Repeat("The national forest system offers year-round recreation. ", 40)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main><p>` + long + `</p></main></body></html>`))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	classification := store.Classification{Category: "Visit", BaseURL: srv.URL + "/visit"}

	bundle := s.Scrape(context.Background(), "recreation", classification)

	if len(bundle.Preview) > previewLength+len("...") {
		t.Errorf("preview length = %d, want at most %d", len(bundle.Preview), previewLength+3)
	}
	if !strings.HasSuffix(bundle.Preview, "...") {
		t.Error("long preview should be truncated with ellipsis")
	}
}
