package ranker

import (
	"net/url"
	"sort"
	"strings"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

// DefaultMaxSources caps the ranked source list returned to callers.
const DefaultMaxSources = 3

// genericURLs are excluded from ranking outright: citing the site root
// tells the user nothing. One is kept only when no other candidate exists.
var genericURLs = map[string]bool{
	"https://www.fs.usda.gov":  true,
	"https://fs.usda.gov":      true,
	"https://www.fs.usda.gov/": true,
	"https://fs.usda.gov/":     true,
	"www.fs.usda.gov":          true,
	"fs.usda.gov":              true,
}

// searchPatterns flag search-result pages, which are weaker citations than
// content pages.
var searchPatterns = []string{"/search?", "?q=", "?search=", "/results"}

// categoryKeywords are site sections whose presence in a URL signals
// topical specificity.
var categoryKeywords = []string{
	"visit", "recreation", "hiking", "camping", "fishing", "hunting",
	"managing-land", "fire", "natural-resources", "wildlife", "water-resources",
	"about-agency", "mission", "history", "leadership", "biographies",
	"working-with-us", "jobs", "volunteer", "partnerships", "research",
}

// SourceWeights are the hand-tuned scoring weights. They are configuration,
// not guaranteed-correct constants; defaults preserve observed behavior.
type SourceWeights struct {
	URLLength        float64 // per character
	PathSegment      float64 // per path segment
	SearchPenalty    float64 // flat penalty for search-style URLs
	QueryTerm        float64 // per query keyword found in the URL
	ResponseTerm     float64 // per frequent response keyword found in the URL
	CategoryMatch    float64 // per category keyword found in the URL
	CategoryInQuery  float64 // extra when the matched category is in the query
	MinQueryTermLen  int
	MinResponseLen   int
	ResponseTermsCap int
}

func DefaultSourceWeights() SourceWeights {
	return SourceWeights{
		URLLength:        0.01,
		PathSegment:      2,
		SearchPenalty:    -5,
		QueryTerm:        3,
		ResponseTerm:     2,
		CategoryMatch:    2,
		CategoryInQuery:  5,
		MinQueryTermLen:  3,
		MinResponseLen:   4,
		ResponseTermsCap: 20,
	}
}

type scoredSource struct {
	url   string
	score float64
}

// SourceRanker scores and filters candidate source URLs and images for
// relevance to the query and the generated answer.
type SourceRanker struct {
	weights      SourceWeights
	imageWeights ImageWeights
}

func NewSourceRanker(weights SourceWeights, imageWeights ImageWeights) *SourceRanker {
	return &SourceRanker{
		weights:      weights,
		imageWeights: imageWeights,
	}
}

// Rank scores every candidate URL independently and returns the top
// maxSources, highest score first. Generic root URLs are dropped before
// scoring unless they are all there is.
func (r *SourceRanker) Rank(query string, candidateURLs []string, responseText string, maxSources int) []store.Source {
	if maxSources <= 0 {
		maxSources = DefaultMaxSources
	}

	filtered := make([]string, 0, len(candidateURLs))
	for _, u := range candidateURLs {
		if !genericURLs[u] {
			filtered = append(filtered, u)
		}
	}
	// Keep exactly one fallback rather than returning nothing
	if len(filtered) == 0 && len(candidateURLs) > 0 {
		filtered = candidateURLs[:1]
	}

	scored := make([]scoredSource, 0, len(filtered))
	for _, u := range filtered {
		scored = append(scored, scoredSource{url: u, score: r.Score(query, u, responseText)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxSources {
		scored = scored[:maxSources]
	}

	sources := make([]store.Source, 0, len(scored))
	for _, s := range scored {
		sources = append(sources, store.Source{URL: s.url})
	}
	return sources
}

// Score computes the relevance of one URL. Each feature is independent and
// summed: path depth and length approximate specificity, search pages are
// penalized, query/response/category keyword hits are rewarded.
func (r *SourceRanker) Score(query, candidateURL, responseText string) float64 {
	w := r.weights
	lowered := strings.ToLower(candidateURL)

	score := float64(len(candidateURL)) * w.URLLength
	score += float64(pathSegments(candidateURL)) * w.PathSegment

	if IsSearchURL(candidateURL) {
		score += w.SearchPenalty
	}

	loweredQuery := strings.ToLower(query)
	for _, term := range strings.Fields(loweredQuery) {
		if len(term) > w.MinQueryTermLen && strings.Contains(lowered, term) {
			score += w.QueryTerm
		}
	}

	responseTerms := strings.Fields(strings.ToLower(responseText))
	counted := 0
	for _, term := range responseTerms {
		if counted >= w.ResponseTermsCap {
			break
		}
		if len(term) > w.MinResponseLen {
			counted++
			if strings.Contains(lowered, term) {
				score += w.ResponseTerm
			}
		}
	}

	for _, category := range categoryKeywords {
		if strings.Contains(lowered, "/"+category) {
			score += w.CategoryMatch
			if strings.Contains(loweredQuery, category) {
				score += w.CategoryInQuery
			}
		}
	}

	return score
}

// Narrow applies the live response-generation policy: at most two content
// URLs, or a single search URL when content pages are unavailable.
func Narrow(sources []store.Source) []store.Source {
	var content, search []store.Source
	for _, s := range sources {
		if IsSearchURL(s.URL) {
			search = append(search, s)
		} else {
			content = append(content, s)
		}
	}
	if len(content) > 0 {
		if len(content) > 2 {
			content = content[:2]
		}
		return content
	}
	if len(search) > 0 {
		return search[:1]
	}
	return nil
}

func IsSearchURL(u string) bool {
	for _, pattern := range searchPatterns {
		if strings.Contains(u, pattern) {
			return true
		}
	}
	return false
}

func pathSegments(raw string) int {
	parsed, err := url.Parse(normalizeURL(raw))
	if err != nil {
		return 0
	}
	count := 0
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment != "" {
			count++
		}
	}
	return count
}

func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}
