package urlgen

import (
	"regexp"
	"strings"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

// DefaultDomain is the target site all candidate URLs live on.
const DefaultDomain = "www.fs.usda.gov"

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Generator deterministically expands a (query, classification) pair into an
// ordered list of candidate URLs. Deterministic construction keeps the URL
// set auditable instead of depending on the target site's own search ranking.
type Generator struct {
	domain string
}

func NewGenerator(domain string) *Generator {
	if domain == "" {
		domain = DefaultDomain
	}
	return &Generator{domain: domain}
}

// Generate returns a deduplicated, order-preserving URL list:
// the domain root, the classification's base URL, keyword-gated
// category paths, and a full-text search fallback.
func (g *Generator) Generate(query string, classification store.Classification) []string {
	q := strings.ToLower(query)

	urls := []string{g.domain, classification.BaseURL}

	switch classification.Category {
	case "Visit":
		urls = append(urls, g.domain+"/recreation")
		if strings.Contains(q, "trail") || strings.Contains(q, "hik") {
			urls = append(urls, g.domain+"/recreation/hiking")
		}
		if strings.Contains(q, "camp") {
			urls = append(urls, g.domain+"/recreation/camping")
		}

	case "Managing Land":
		urls = append(urls, g.domain+"/managing-land/forest-management")
		if strings.Contains(q, "fire") || strings.Contains(q, "wildfire") {
			urls = append(urls, g.domain+"/managing-land/fire")
		}
		if strings.Contains(q, "conserv") || strings.Contains(q, "protect") {
			urls = append(urls, g.domain+"/managing-land/natural-resources")
		}

	case "About Agency":
		urls = append(urls, g.domain+"/about-agency/what-we-believe")
		if strings.Contains(q, "mission") || strings.Contains(q, "purpose") {
			urls = append(urls, g.domain+"/about-agency/what-we-believe/mission-motto")
		}
		if strings.Contains(q, "history") {
			urls = append(urls, g.domain+"/about-agency/history")
		}

	case "Working with Us":
		urls = append(urls, g.domain+"/working-with-us/jobs")
		if strings.Contains(q, "partner") || strings.Contains(q, "volunteer") {
			urls = append(urls, g.domain+"/working-with-us/partnerships")
		}
		if strings.Contains(q, "career") || strings.Contains(q, "job") {
			urls = append(urls, g.domain+"/working-with-us/jobs/career-paths")
		}
	}

	// Site-wide search as a last resort
	if terms := SearchTerms(query); len(terms) > 0 {
		urls = append(urls, g.domain+"/search?q="+strings.Join(terms, "+"))
	}

	return dedupe(urls)
}

// SearchTerms tokenizes a query for the full-text search fallback:
// lowercased, punctuation stripped, tokens shorter than three characters
// dropped.
func SearchTerms(query string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(query), "")
	var terms []string
	for _, term := range strings.Fields(cleaned) {
		if len(term) > 2 {
			terms = append(terms, term)
		}
	}
	return terms
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
