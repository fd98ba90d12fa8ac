package response

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/llm"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/processor"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/ranker"
	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

type stubProvider struct {
	content    string
	err        error
	lastPrompt string
}

func (s *stubProvider) Complete(_ context.Context, _ string, userPrompt string, _ ...llm.Option) (*llm.Completion, error) {
	s.lastPrompt = userPrompt
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Content: s.content, InputTokens: 120, OutputTokens: 40}, nil
}

func newTestGenerator(provider llm.Provider, maxContextTokens int) *Generator {
	return NewGenerator(
		provider,
		ranker.NewSourceRanker(ranker.DefaultSourceWeights(), ranker.DefaultImageWeights()),
		NewTokenCounter("gpt-4o-mini"),
		"gpt-4o-mini",
		maxContextTokens,
		logger.NewNopLogger(),
	)
}

func TestGenerateFallbackOnEmptyContext(t *testing.T) {
	provider := &stubProvider{content: "should not be called"}
	g := newTestGenerator(provider, 6000)

	result := g.Generate(context.Background(), "any question", &processor.Processed{})

	if result.ResponseHTML != fallbackHTML {
		t.Errorf("ResponseHTML = %q, want fallback", result.ResponseHTML)
	}
	if len(result.Sources) != 1 || result.Sources[0].URL != store.SentinelNoInformation {
		t.Errorf("Sources = %v, want sentinel", result.Sources)
	}
	if provider.lastPrompt != "" {
		t.Error("LLM should not be invoked without context")
	}
}

func TestGenerateErrorPathDegrades(t *testing.T) {
	provider := &stubProvider{err: errors.New("rate limited")}
	g := newTestGenerator(provider, 6000)

	processed := &processor.Processed{
		Chunks:     []string{"The Forest Service manages 154 national forests."},
		SourceURLs: []string{"https://www.fs.usda.gov/about-agency"},
	}

	result := g.Generate(context.Background(), "how many forests", processed)

	if result.ResponseHTML != errorHTML {
		t.Errorf("ResponseHTML = %q, want error HTML", result.ResponseHTML)
	}
	if len(result.Sources) != 1 || result.Sources[0].URL != store.SentinelError {
		t.Errorf("Sources = %v, want error sentinel", result.Sources)
	}
}

func TestGenerateSuccess(t *testing.T) {
	provider := &stubProvider{content: "<p>There are 154 national forests managed by the agency.</p>"}
	g := newTestGenerator(provider, 6000)

	processed := &processor.Processed{
		Chunks: []string{"The Forest Service manages 154 national forests."},
		SourceURLs: []string{
			"https://www.fs.usda.gov/about-agency",
			"https://www.fs.usda.gov/about-agency/newsroom",
		},
	}

	result := g.Generate(context.Background(), "how many national forests are there", processed)

	if result.ResponseHTML != provider.content {
		t.Errorf("ResponseHTML = %q", result.ResponseHTML)
	}
	if len(result.Sources) == 0 || len(result.Sources) > 2 {
		t.Errorf("Sources = %v, want 1-2 content sources", result.Sources)
	}
	if result.Details.Tokens.Input != 120 || result.Details.Tokens.Output != 40 {
		t.Errorf("token usage = %+v, want provider-reported counts", result.Details.Tokens)
	}
	if result.Details.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", result.Details.Model)
	}

	if !strings.Contains(provider.lastPrompt, "Question: how many national forests are there") {
		t.Errorf("prompt missing question: %q", provider.lastPrompt)
	}
	if !strings.Contains(provider.lastPrompt, "154 national forests") {
		t.Errorf("prompt missing context: %q", provider.lastPrompt)
	}
}

func TestGenerateRespectsContextBudget(t *testing.T) {
	provider := &stubProvider{content: "answer"}
	// Budget fits roughly one chunk
	g := newTestGenerator(provider, 20)

	chunk := strings.Repeat("forest recreation content ", 3)
	processed := &processor.Processed{
		Chunks:     []string{chunk, "SECOND CHUNK MARKER " + strings.Repeat("more text ", 10)},
		SourceURLs: []string{"https://www.fs.usda.gov/visit"},
	}

	g.Generate(context.Background(), "question", processed)

	if strings.Contains(provider.lastPrompt, "SECOND CHUNK MARKER") {
		t.Error("second chunk should be dropped once the token budget is spent")
	}
}

func TestTokenCounter(t *testing.T) {
	c := NewTokenCounter("gpt-4o-mini")

	if got := c.Count(""); got != 0 {
		t.Errorf("Count(empty) = %d, want 0", got)
	}

	short := c.Count("hello")
	long := c.Count(strings.Repeat("hello world ", 50))
	if long <= short {
		t.Errorf("longer text should count more tokens: %d vs %d", long, short)
	}
}
