package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/llm"
	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

// Category is one section of the Forest Service website.
type Category struct {
	Name        string
	BaseURL     string
	Description string
}

// Categories is the fixed, closed set of classification targets.
var Categories = []Category{
	{Name: "Visit", BaseURL: "fs.usda.gov/visit", Description: "Recreation, trails, camping, accessibility"},
	{Name: "Managing Land", BaseURL: "fs.usda.gov/managing-land", Description: "Forest management, conservation, fire"},
	{Name: "About Agency", BaseURL: "fs.usda.gov/about-agency", Description: "Mission, leadership, organization"},
	{Name: "Working with Us", BaseURL: "fs.usda.gov/working-with-us", Description: "Careers, partnerships, contracts"},
}

// DefaultClassification is returned whenever classification cannot be
// trusted. Classification failure must never block the pipeline.
func DefaultClassification() store.Classification {
	return store.Classification{
		Category:   "Visit",
		Confidence: 0.5,
		BaseURL:    "fs.usda.gov/visit",
	}
}

type Classifier struct {
	provider llm.Provider
	log      logger.ILogger
}

func NewClassifier(provider llm.Provider, log logger.ILogger) *Classifier {
	return &Classifier{
		provider: provider,
		log:      log,
	}
}

type classificationPayload struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Classify maps a free-text query to a website section with a confidence
// score via a JSON-mode LLM call. It never returns an error: an
// unrecognized category or a failed call degrades to the default.
func (c *Classifier) Classify(ctx context.Context, query string) store.Classification {
	systemPrompt := buildSystemPrompt()

	completion, err := c.provider.Complete(ctx, systemPrompt, query,
		llm.WithTemperature(0.3),
		llm.WithJSONResponse(),
	)
	if err != nil {
		c.log.Warn("classifier", "classification call failed, using default", map[string]interface{}{"error": err.Error()})
		return DefaultClassification()
	}

	var payload classificationPayload
	if err := json.Unmarshal([]byte(completion.Content), &payload); err != nil {
		c.log.Warn("classifier", "classification response not valid JSON, using default", map[string]interface{}{"error": err.Error()})
		return DefaultClassification()
	}

	for _, category := range Categories {
		if category.Name == payload.Category {
			return store.Classification{
				Category:   category.Name,
				Confidence: payload.Confidence,
				BaseURL:    category.BaseURL,
			}
		}
	}

	c.log.Warn("classifier", "unrecognized category, using default", map[string]interface{}{"category": payload.Category})
	return DefaultClassification()
}

func buildSystemPrompt() string {
	var sections strings.Builder
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		sections.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, c.Description))
		names = append(names, c.Name)
	}

	return fmt.Sprintf(`You are a query classifier for a US Forest Service chatbot. Your job is to determine which section of the Forest Service website would most likely contain information relevant to the user's query.

Website sections:
%s
Classify the query into EXACTLY ONE of these categories. Your response should be in JSON format with two fields:
1. "category": The name of the category (one of: %s)
2. "confidence": A number between 0 and 1 indicating your confidence in this classification`,
		sections.String(), strings.Join(names, ", "))
}
