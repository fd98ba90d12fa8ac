package ranker

import (
	"net/url"
	"strings"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

// entityTerms mark people and titles; a portrait of the person being asked
// about is the most valuable image we can show.
var entityTerms = []string{
	"chief", "director", "secretary", "supervisor", "ranger",
	"forester", "deputy", "leader",
}

// topicTerms mark places and subjects; weaker evidence than a named person.
var topicTerms = []string{
	"forest", "trail", "camp", "fire", "wildlife", "river", "lake",
	"mountain", "recreation", "wilderness",
}

var genericTerms = []string{"logo", "banner", "icon", "graphic", "decorative"}

// ImageWeights configure the image relevance heuristic. Precision over
// recall: an irrelevant image is worse than no image, so the threshold
// only clears when an entity or several topical signals match.
type ImageWeights struct {
	Entity        float64 // entity term present in alt text
	EntityInQuery float64 // extra when the same entity term is in the query
	Topic         float64
	QueryTerm     float64
	Generic       float64 // penalty
	MinScore      float64 // below this, return no image at all
}

func DefaultImageWeights() ImageWeights {
	return ImageWeights{
		Entity:        10,
		EntityInQuery: 10,
		Topic:         4,
		QueryTerm:     3,
		Generic:       -8,
		MinScore:      10,
	}
}

// RankImages selects at most one image: the top-scoring candidate whose
// host matches a host already selected as a source, and only if its score
// clears the minimum relevance threshold.
func (r *SourceRanker) RankImages(query string, images []store.Image, sources []store.Source) []store.Image {
	if len(images) == 0 || len(sources) == 0 {
		return nil
	}

	sourceHosts := make(map[string]bool, len(sources))
	for _, s := range sources {
		if h := hostOf(s.URL); h != "" {
			sourceHosts[h] = true
		}
	}

	var best *store.Image
	bestScore := 0.0

	for i := range images {
		img := images[i]
		if !sourceHosts[hostOf(img.FullURL)] {
			continue
		}
		score := r.scoreImage(query, img)
		if best == nil || score > bestScore {
			best = &images[i]
			bestScore = score
		}
	}

	if best == nil || bestScore < r.imageWeights.MinScore {
		return nil
	}
	return []store.Image{*best}
}

func (r *SourceRanker) scoreImage(query string, img store.Image) float64 {
	w := r.imageWeights
	alt := strings.ToLower(img.Alt)
	loweredQuery := strings.ToLower(query)

	var score float64

	for _, term := range entityTerms {
		if strings.Contains(alt, term) {
			score += w.Entity
			if strings.Contains(loweredQuery, term) {
				score += w.EntityInQuery
			}
		}
	}

	for _, term := range topicTerms {
		if strings.Contains(alt, term) {
			score += w.Topic
		}
	}

	for _, term := range strings.Fields(loweredQuery) {
		if len(term) > 3 && strings.Contains(alt, term) {
			score += w.QueryTerm
		}
	}

	for _, term := range genericTerms {
		if strings.Contains(alt, term) {
			score += w.Generic
		}
	}

	return score
}

func hostOf(raw string) string {
	parsed, err := url.Parse(normalizeURL(raw))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
