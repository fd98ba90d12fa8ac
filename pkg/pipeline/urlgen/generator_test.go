package urlgen

import (
	"strings"
	"testing"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

func visitClassification() store.Classification {
	return store.Classification{
		Category:   "Visit",
		Confidence: 0.9,
		BaseURL:    "fs.usda.gov/visit",
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(DefaultDomain)

	tests := []struct {
		name           string
		query          string
		classification store.Classification
		wantContains   []string
		wantAbsent     []string
	}{
		{
			name:           "visit query with camping keyword",
			query:          "where can I go camping",
			classification: visitClassification(),
			wantContains: []string{
				"www.fs.usda.gov",
				"fs.usda.gov/visit",
				"www.fs.usda.gov/recreation",
				"www.fs.usda.gov/recreation/camping",
			},
			wantAbsent: []string{"www.fs.usda.gov/recreation/hiking"},
		},
		{
			name:           "hiking keyword triggers hiking path",
			query:          "best hiking trails",
			classification: visitClassification(),
			wantContains:   []string{"www.fs.usda.gov/recreation/hiking"},
		},
		{
			name:  "fire keyword in managing land",
			query: "wildfire prevention",
			classification: store.Classification{
				Category: "Managing Land",
				BaseURL:  "fs.usda.gov/managing-land",
			},
			wantContains: []string{
				"www.fs.usda.gov/managing-land/forest-management",
				"www.fs.usda.gov/managing-land/fire",
			},
		},
		{
			name:  "mission keyword in about agency",
			query: "what is the mission of the forest service",
			classification: store.Classification{
				Category: "About Agency",
				BaseURL:  "fs.usda.gov/about-agency",
			},
			wantContains: []string{
				"www.fs.usda.gov/about-agency/what-we-believe/mission-motto",
			},
		},
		{
			name:  "career keyword in working with us",
			query: "how do I find a job",
			classification: store.Classification{
				Category: "Working with Us",
				BaseURL:  "fs.usda.gov/working-with-us",
			},
			wantContains: []string{
				"www.fs.usda.gov/working-with-us/jobs",
				"www.fs.usda.gov/working-with-us/jobs/career-paths",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := g.Generate(tt.query, tt.classification)

			got := make(map[string]bool, len(urls))
			for _, u := range urls {
				got[u] = true
			}

			for _, want := range tt.wantContains {
				if !got[want] {
					t.Errorf("Generate(%q) missing %q, got %v", tt.query, want, urls)
				}
			}
			for _, absent := range tt.wantAbsent {
				if got[absent] {
					t.Errorf("Generate(%q) should not contain %q", tt.query, absent)
				}
			}
		})
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	g := NewGenerator(DefaultDomain)

	urls := g.Generate("camping camping camping", visitClassification())

	seen := make(map[string]bool)
	for _, u := range urls {
		if seen[u] {
			t.Errorf("duplicate URL in output: %q", u)
		}
		seen[u] = true
	}
}

func TestGenerateSingleSearchURL(t *testing.T) {
	g := NewGenerator(DefaultDomain)

	urls := g.Generate("where can I find accessible camping near rivers", visitClassification())

	searchCount := 0
	for _, u := range urls {
		if strings.Contains(u, "/search?q=") {
			searchCount++
		}
	}
	if searchCount != 1 {
		t.Errorf("want exactly 1 search URL, got %d in %v", searchCount, urls)
	}
}

func TestGenerateAlwaysIncludesDomainRoot(t *testing.T) {
	g := NewGenerator(DefaultDomain)

	urls := g.Generate("anything", visitClassification())
	if len(urls) == 0 || urls[0] != DefaultDomain {
		t.Errorf("first URL = %v, want domain root %q", urls, DefaultDomain)
	}
}

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "short tokens dropped",
			query: "Where is my campsite",
			want:  []string{"where", "campsite"},
		},
		{
			name:  "punctuation stripped",
			query: "What's the fire danger today?",
			want:  []string{"whats", "the", "fire", "danger", "today"},
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
		{
			name:  "only short tokens",
			query: "is it ok",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchTerms(tt.query)

			if len(got) != len(tt.want) {
				t.Fatalf("SearchTerms(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SearchTerms(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}
