package ranker

import (
	"net/url"
	"regexp"
	"strings"
)

var titleTag = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

var titleSuffixes = []string{
	" | US Forest Service",
	" | USDA Forest Service",
	" | Forest Service",
	" | USDA",
}

const maxTitleLength = 60

// ExtractPageTitle pulls a display title out of a page, cleaning the site's
// boilerplate suffixes. Falls back to a title derived from the URL path.
func ExtractPageTitle(html, pageURL string) string {
	if m := titleTag.FindStringSubmatch(html); m != nil {
		title := strings.TrimSpace(m[1])
		for _, suffix := range titleSuffixes {
			title = strings.TrimSuffix(title, suffix)
		}
		if len(title) > maxTitleLength {
			title = title[:maxTitleLength-3] + "..."
		}
		if title != "" {
			return title
		}
	}

	// Derive "About Agency - Leadership" from /about-agency/leadership
	parsed, err := url.Parse(normalizeURL(pageURL))
	if err != nil {
		return ""
	}
	var parts []string
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment == "" {
			continue
		}
		words := strings.Split(segment, "-")
		for i, word := range words {
			if word != "" {
				words[i] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		parts = append(parts, strings.Join(words, " "))
	}
	return strings.Join(parts, " - ")
}
