package ranker

import (
	"testing"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

func newTestRanker() *SourceRanker {
	return NewSourceRanker(DefaultSourceWeights(), DefaultImageWeights())
}

func TestRankPrefersSpecificURLs(t *testing.T) {
	r := newTestRanker()

	candidates := []string{
		"https://www.fs.usda.gov/visit",
		"https://www.fs.usda.gov/visit/destinations/deschutes-hiking",
	}

	sources := r.Rank("hiking in deschutes", candidates, "Deschutes National Forest has many hiking trails.", 3)

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources[0].URL != "https://www.fs.usda.gov/visit/destinations/deschutes-hiking" {
		t.Errorf("top source = %q, want the deeper matching URL", sources[0].URL)
	}
}

func TestRankExcludesGenericURLs(t *testing.T) {
	r := newTestRanker()

	candidates := []string{
		"https://www.fs.usda.gov",
		"https://www.fs.usda.gov/visit/destinations",
	}

	sources := r.Rank("where to visit", candidates, "", 3)

	for _, s := range sources {
		if s.URL == "https://www.fs.usda.gov" {
			t.Error("generic root URL should be excluded when alternatives exist")
		}
	}
}

func TestRankKeepsOneGenericFallback(t *testing.T) {
	r := newTestRanker()

	sources := r.Rank("anything", []string{"https://www.fs.usda.gov"}, "", 3)

	if len(sources) != 1 || sources[0].URL != "https://www.fs.usda.gov" {
		t.Errorf("sources = %v, want the single generic fallback", sources)
	}
}

func TestRankCapsResultCount(t *testing.T) {
	r := newTestRanker()

	candidates := []string{
		"https://www.fs.usda.gov/visit/a",
		"https://www.fs.usda.gov/visit/b",
		"https://www.fs.usda.gov/visit/c",
		"https://www.fs.usda.gov/visit/d",
		"https://www.fs.usda.gov/visit/e",
	}

	sources := r.Rank("visit", candidates, "", 3)

	if len(sources) != 3 {
		t.Errorf("got %d sources, want 3", len(sources))
	}
}

func TestScoreSearchPenalty(t *testing.T) {
	r := newTestRanker()

	content := r.Score("camping", "https://www.fs.usda.gov/recreation/camping", "")
	search := r.Score("camping", "https://www.fs.usda.gov/search?q=camping", "")

	if search >= content {
		t.Errorf("search URL scored %v, content URL %v; content should win", search, content)
	}
}

func TestScoreCategoryInQueryBonus(t *testing.T) {
	r := newTestRanker()

	with := r.Score("camping this summer", "https://www.fs.usda.gov/recreation/camping", "")
	without := r.Score("summer plans", "https://www.fs.usda.gov/recreation/camping", "")

	if with <= without {
		t.Errorf("query mentioning the category should score higher: %v vs %v", with, without)
	}
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		name    string
		sources []store.Source
		want    []string
	}{
		{
			name: "content URLs capped at two",
			sources: []store.Source{
				{URL: "https://www.fs.usda.gov/visit/a"},
				{URL: "https://www.fs.usda.gov/visit/b"},
				{URL: "https://www.fs.usda.gov/visit/c"},
			},
			want: []string{"https://www.fs.usda.gov/visit/a", "https://www.fs.usda.gov/visit/b"},
		},
		{
			name: "search URL dropped when content exists",
			sources: []store.Source{
				{URL: "https://www.fs.usda.gov/visit/a"},
				{URL: "https://www.fs.usda.gov/search?q=x"},
			},
			want: []string{"https://www.fs.usda.gov/visit/a"},
		},
		{
			name: "single search URL when nothing else",
			sources: []store.Source{
				{URL: "https://www.fs.usda.gov/search?q=x"},
				{URL: "https://www.fs.usda.gov/search?q=y"},
			},
			want: []string{"https://www.fs.usda.gov/search?q=x"},
		},
		{
			name:    "empty in, empty out",
			sources: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrow(tt.sources)

			if len(got) != len(tt.want) {
				t.Fatalf("Narrow = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].URL != tt.want[i] {
					t.Errorf("Narrow[%d] = %q, want %q", i, got[i].URL, tt.want[i])
				}
			}
		})
	}
}

func TestIsSearchURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.fs.usda.gov/search?q=camping", true},
		{"https://www.fs.usda.gov/page?q=x", true},
		{"https://www.fs.usda.gov/results", true},
		{"https://www.fs.usda.gov/visit/destinations", false},
	}

	for _, tt := range tests {
		if got := IsSearchURL(tt.url); got != tt.want {
			t.Errorf("IsSearchURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
