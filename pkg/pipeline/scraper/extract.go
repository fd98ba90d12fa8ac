package scraper

import (
	"net/url"
	"sort"
	"strings"

	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/PuerkitoBio/goquery"
)

const (
	// stripSelector removes chrome that never carries answer content.
	stripSelector = "nav, header, footer, script, style, iframe, .advertisement, .banner, .sidebar"

	// substantialTextLength is the minimum text length for a content-area
	// match to win over later strategies.
	substantialTextLength = 80

	minAltTextLength = 10
	maxImagesPerPage = 5
)

// contentSelectors are tried in priority order; the first one whose text is
// substantial wins.
var contentSelectors = []string{
	"main", "#main", ".main", "#content", ".content", "article", ".article", `[role="main"]`,
}

var genericImageTerms = []string{"icon", "logo", "banner"}

// extraction is what one page yields: the raw HTML of its main content area
// and the scope in which to look for candidate images.
type extraction struct {
	html  string
	scope *goquery.Selection
}

// extractionStrategy is one way of locating a page's main content.
// Strategies are tried in sequence until one yields substantial content.
type extractionStrategy struct {
	name    string
	extract func(doc *goquery.Document) *extraction
}

func contentStrategies() []extractionStrategy {
	strategies := make([]extractionStrategy, 0, len(contentSelectors)+2)

	for _, selector := range contentSelectors {
		sel := selector
		strategies = append(strategies, extractionStrategy{
			name: "selector:" + sel,
			extract: func(doc *goquery.Document) *extraction {
				area := doc.Find(sel).First()
				if area.Length() == 0 {
					return nil
				}
				if len(strings.TrimSpace(area.Text())) < substantialTextLength {
					return nil
				}
				html, err := area.Html()
				if err != nil {
					return nil
				}
				return &extraction{html: html, scope: area}
			},
		})
	}

	strategies = append(strategies, extractionStrategy{
		name: "structured",
		extract: func(doc *goquery.Document) *extraction {
			var b strings.Builder
			doc.Find("h1, h2, h3, h4, h5, h6, p, ul, ol").Each(func(_ int, s *goquery.Selection) {
				if outer, err := goquery.OuterHtml(s); err == nil {
					b.WriteString(outer)
					b.WriteString("\n")
				}
			})
			html := b.String()
			if len(strings.TrimSpace(doc.Find("h1, h2, h3, h4, h5, h6, p, ul, ol").Text())) < substantialTextLength {
				return nil
			}
			return &extraction{html: html, scope: doc.Selection}
		},
	})

	strategies = append(strategies, extractionStrategy{
		name: "body",
		extract: func(doc *goquery.Document) *extraction {
			body := doc.Find("body")
			html, err := body.Html()
			if err != nil || strings.TrimSpace(html) == "" {
				return nil
			}
			return &extraction{html: html, scope: body}
		},
	})

	return strategies
}

// extractMainContent parses a page and walks the strategy list.
// Returns an empty extraction when even the body yields nothing.
func extractMainContent(rawHTML string) *extraction {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &extraction{}
	}

	doc.Find(stripSelector).Remove()

	for _, strategy := range contentStrategies() {
		if result := strategy.extract(doc); result != nil {
			return result
		}
	}
	return &extraction{}
}

// extractImages collects candidate images from the matched content area.
// Candidates need descriptive alt text, must not be flagged as icons or
// logos, are deduplicated by resolved absolute URL and capped per page,
// longest alt text first (a relevance proxy).
func extractImages(scope *goquery.Selection, pageURL string) []store.Image {
	if scope == nil {
		return nil
	}

	base, err := url.Parse(normalizeURL(pageURL))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var images []store.Image

	scope.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			return
		}
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		if len(alt) < minAltTextLength {
			return
		}

		class := s.AttrOr("class", "")
		flagged := strings.ToLower(src + " " + alt + " " + class)
		for _, term := range genericImageTerms {
			if strings.Contains(flagged, term) {
				return
			}
		}

		resolved, err := base.Parse(src)
		if err != nil {
			return
		}
		fullURL := resolved.String()
		if seen[fullURL] {
			return
		}
		seen[fullURL] = true

		images = append(images, store.Image{
			Src:     src,
			Alt:     alt,
			FullURL: fullURL,
		})
	})

	sort.SliceStable(images, func(i, j int) bool {
		return len(images[i].Alt) > len(images[j].Alt)
	})

	if len(images) > maxImagesPerPage {
		images = images[:maxImagesPerPage]
	}
	return images
}

func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}
