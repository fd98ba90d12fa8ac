package processor

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/scraper"
	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/PuerkitoBio/goquery"
)

const DefaultMaxChunkSize = 1500

var (
	inlineURL      = regexp.MustCompile(`\((https?://[^)]+)\)`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	excessSpaces   = regexp.MustCompile(`[ \t]{2,}`)
	sentenceEnd    = regexp.MustCompile(`[.!?]\s+`)
	paragraphSep   = regexp.MustCompile(`\n\n+`)
)

// Processed is the cleaned, chunked form of a scrape bundle.
type Processed struct {
	CleanedText   string
	Chunks        []string
	SourceURLs    []string
	Images        []store.Image
	ProcessedSize int
}

type Processor struct {
	domain       string
	maxChunkSize int
	log          logger.ILogger
}

func NewProcessor(domain string, maxChunkSize int, log logger.ILogger) *Processor {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	return &Processor{
		domain:       domain,
		maxChunkSize: maxChunkSize,
		log:          log,
	}
}

// Process cleans the combined scraped HTML into structured plain text,
// splits it into size-bounded chunks, and collects candidate source URLs
// (URLs embedded in the text unioned with the successfully scraped ones).
func (p *Processor) Process(bundle *scraper.Bundle) *Processed {
	cleaned := p.CleanHTML(bundle.CombinedContent)
	chunks := p.ChunkContent(cleaned)

	extracted := p.extractURLs(cleaned)
	sourceURLs := make([]string, 0, len(bundle.URLStatuses)+len(extracted))
	seen := make(map[string]bool)
	for _, status := range bundle.URLStatuses {
		if status.Status == store.StatusSuccess && !seen[status.URL] {
			seen[status.URL] = true
			sourceURLs = append(sourceURLs, status.URL)
		}
	}
	for _, u := range extracted {
		if !seen[u] {
			seen[u] = true
			sourceURLs = append(sourceURLs, u)
		}
	}

	p.log.Info("processor", "content processed", map[string]interface{}{
		"processed_size": len(cleaned),
		"chunks":         len(chunks),
		"source_urls":    len(sourceURLs),
	})

	return &Processed{
		CleanedText:   cleaned,
		Chunks:        chunks,
		SourceURLs:    sourceURLs,
		Images:        bundle.Images,
		ProcessedSize: len(cleaned),
	}
}

// CleanHTML normalizes extracted HTML into structured plain text.
// Hyperlinks become "text (absoluteUrl)" so URLs survive into the plain
// text; headings, paragraphs, lists and tables keep lightweight markers.
func (p *Processor) CleanHTML(rawHTML string) string {
	// Already plain text, nothing to clean
	if !strings.Contains(rawHTML, "<") || !strings.Contains(rawHTML, ">") {
		return strings.TrimSpace(rawHTML)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript, iframe, img").Remove()

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		text := strings.TrimSpace(s.Text())
		if href == "" || text == "" || strings.HasPrefix(href, "#") {
			return
		}
		fullHref := href
		if strings.HasPrefix(href, "/") {
			fullHref = "https://" + p.domain + href
		}
		s.ReplaceWithHtml(html.EscapeString(fmt.Sprintf("%s (%s)", text, fullHref)))
	})

	var text strings.Builder

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if heading := strings.TrimSpace(s.Text()); heading != "" {
			text.WriteString("\n## " + heading + "\n\n")
		}
	})

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if paragraph := strings.TrimSpace(s.Text()); paragraph != "" {
			text.WriteString(paragraph + "\n\n")
		}
	})

	doc.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		text.WriteString("\n")
		s.Find("li").Each(func(_ int, li *goquery.Selection) {
			if item := strings.TrimSpace(li.Text()); item != "" {
				text.WriteString("- " + item + "\n")
			}
		})
		text.WriteString("\n")
	})

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		text.WriteString("Table: ")
		if caption := strings.TrimSpace(table.Find("caption").Text()); caption != "" {
			text.WriteString(caption + "\n")
		} else {
			text.WriteString("Data table\n")
		}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) > 0 {
				text.WriteString(strings.Join(cells, " | ") + "\n")
			}
		})
		text.WriteString("\n")
	})

	result := text.String()

	// Structured extraction found nothing, fall back to all text
	if strings.TrimSpace(result) == "" {
		result = doc.Find("body").Text()
	}

	// Collapse runs of blank lines and inline whitespace while keeping
	// paragraph boundaries intact for the chunker.
	result = excessNewlines.ReplaceAllString(result, "\n\n")
	result = excessSpaces.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ChunkContent greedily packs paragraphs into chunks bounded by the
// configured max size. A paragraph that alone exceeds the budget is split
// at sentence boundaries; a single oversized sentence is kept whole.
func (p *Processor) ChunkContent(text string) []string {
	if len(text) <= p.maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current string

	for _, paragraph := range splitParagraphs(text) {
		if len(current)+len(paragraph)+2 > p.maxChunkSize {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current = ""
			}

			if len(paragraph) > p.maxChunkSize {
				var sentenceChunk string
				for _, sentence := range splitSentences(paragraph) {
					if len(sentenceChunk)+len(sentence)+1 > p.maxChunkSize {
						if sentenceChunk != "" {
							chunks = append(chunks, sentenceChunk)
						}
						sentenceChunk = sentence
					} else {
						if sentenceChunk != "" {
							sentenceChunk += " "
						}
						sentenceChunk += sentence
					}
				}
				if len(sentenceChunk) > 0 {
					current = sentenceChunk
				}
			} else {
				current = paragraph
			}
		} else {
			if current != "" {
				current += "\n\n"
			}
			current += paragraph
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

func splitParagraphs(text string) []string {
	parts := paragraphSep.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitSentences cuts after terminal punctuation followed by whitespace,
// keeping the punctuation with its sentence.
func splitSentences(paragraph string) []string {
	var sentences []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(paragraph, -1) {
		// loc[0] is the punctuation character, loc[1] the end of the
		// trailing whitespace.
		sentences = append(sentences, paragraph[last:loc[0]+1])
		last = loc[1]
	}
	if last < len(paragraph) {
		sentences = append(sentences, paragraph[last:])
	}
	return sentences
}

// extractURLs scans cleaned text for the "(http...)" pattern produced
// during cleaning, keeping only URLs on the target domain.
func (p *Processor) extractURLs(content string) []string {
	// Match bare and www-prefixed URLs alike.
	domain := strings.TrimPrefix(p.domain, "www.")
	matches := inlineURL.FindAllStringSubmatch(content, -1)
	var urls []string
	for _, m := range matches {
		if strings.Contains(m[1], domain) {
			urls = append(urls, m[1])
		}
	}
	return urls
}
