package response

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/llm"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/processor"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/ranker"
	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

const (
	// DefaultMaxContextTokens is a conservative context budget for the
	// answer model.
	DefaultMaxContextTokens = 6000

	answerMaxTokens   = 1000
	answerTemperature = 0.7
)

// Result is the final pipeline output for one query.
type Result struct {
	ResponseHTML string
	Sources      []store.Source
	Images       []store.Image
	Details      store.LLMDetails
}

// Generator builds the LLM prompt from processed chunks, invokes the model
// and attaches ranked sources, an optional image and telemetry. It never
// returns an error: every failure path degrades to a deterministic answer.
type Generator struct {
	provider         llm.Provider
	ranker           *ranker.SourceRanker
	counter          *TokenCounter
	model            string
	maxContextTokens int
	log              logger.ILogger
}

func NewGenerator(provider llm.Provider, sourceRanker *ranker.SourceRanker, counter *TokenCounter, model string, maxContextTokens int, log logger.ILogger) *Generator {
	if maxContextTokens <= 0 {
		maxContextTokens = DefaultMaxContextTokens
	}
	return &Generator{
		provider:         provider,
		ranker:           sourceRanker,
		counter:          counter,
		model:            model,
		maxContextTokens: maxContextTokens,
		log:              log,
	}
}

func (g *Generator) Generate(ctx context.Context, query string, processed *processor.Processed) *Result {
	start := time.Now()

	// Chunks are ordered by construction, so greedy packing keeps the
	// earlier, more relevant ones when the budget runs out.
	var contextBuilder strings.Builder
	contextTokens := 0
	for _, chunk := range processed.Chunks {
		chunkTokens := g.counter.Count(chunk)
		if contextTokens+chunkTokens > g.maxContextTokens {
			break
		}
		contextBuilder.WriteString(chunk)
		contextBuilder.WriteString("\n\n")
		contextTokens += chunkTokens
	}
	contextText := contextBuilder.String()

	// No usable context: answer deterministically, skip the LLM entirely
	if strings.TrimSpace(contextText) == "" {
		g.log.Info("response", "no context available, returning fallback", map[string]interface{}{"query_len": len(query)})
		return &Result{
			ResponseHTML: fallbackHTML,
			Sources:      []store.Source{{URL: store.SentinelNoInformation}},
			Details:      g.details(0, 0, start),
		}
	}

	userPrompt := fmt.Sprintf("Question: %s\n\nContext:\n%s", query, contextText)

	completion, err := g.provider.Complete(ctx, systemPrompt, userPrompt,
		llm.WithTemperature(answerTemperature),
		llm.WithMaxTokens(answerMaxTokens),
	)
	if err != nil {
		g.log.Error("response", "LLM generation failed", map[string]interface{}{"error": err.Error()})
		return &Result{
			ResponseHTML: errorHTML,
			Sources:      []store.Source{{URL: store.SentinelError}},
			Details:      g.details(0, 0, start),
		}
	}

	answer := strings.TrimSpace(completion.Content)

	inputTokens := completion.InputTokens
	if inputTokens == 0 {
		inputTokens = g.counter.Count(systemPrompt + userPrompt)
	}
	outputTokens := completion.OutputTokens
	if outputTokens == 0 {
		outputTokens = g.counter.Count(answer)
	}

	ranked := g.ranker.Rank(query, processed.SourceURLs, answer, ranker.DefaultMaxSources)
	sources := ranker.Narrow(ranked)
	images := g.ranker.RankImages(query, processed.Images, sources)

	return &Result{
		ResponseHTML: answer,
		Sources:      sources,
		Images:       images,
		Details:      g.details(inputTokens, outputTokens, start),
	}
}

func (g *Generator) details(input, output int, start time.Time) store.LLMDetails {
	return store.LLMDetails{
		Model:          g.model,
		Tokens:         store.TokenUsage{Input: input, Output: output},
		ProcessingTime: time.Since(start).Seconds(),
	}
}
