package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/pkg/llm"
)

type stubProvider struct {
	content string
	err     error
}

func (s *stubProvider) Complete(_ context.Context, _ string, _ string, _ ...llm.Option) (*llm.Completion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Content: s.content}, nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		provider       *stubProvider
		wantCategory   string
		wantConfidence float64
		wantBaseURL    string
	}{
		{
			name:           "valid classification",
			provider:       &stubProvider{content: `{"category": "Managing Land", "confidence": 0.85}`},
			wantCategory:   "Managing Land",
			wantConfidence: 0.85,
			wantBaseURL:    "fs.usda.gov/managing-land",
		},
		{
			name:           "provider error falls back to default",
			provider:       &stubProvider{err: errors.New("connection refused")},
			wantCategory:   "Visit",
			wantConfidence: 0.5,
			wantBaseURL:    "fs.usda.gov/visit",
		},
		{
			name:           "invalid JSON falls back to default",
			provider:       &stubProvider{content: "not json at all"},
			wantCategory:   "Visit",
			wantConfidence: 0.5,
			wantBaseURL:    "fs.usda.gov/visit",
		},
		{
			name:           "unrecognized category falls back to default",
			provider:       &stubProvider{content: `{"category": "Space Travel", "confidence": 0.99}`},
			wantCategory:   "Visit",
			wantConfidence: 0.5,
			wantBaseURL:    "fs.usda.gov/visit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.provider, logger.NewNopLogger())

			got := c.Classify(context.Background(), "some query")

			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %q, want %q", got.BaseURL, tt.wantBaseURL)
			}
		})
	}
}

func TestDefaultClassification(t *testing.T) {
	got := DefaultClassification()

	if got.Category != "Visit" || got.Confidence != 0.5 || got.BaseURL != "fs.usda.gov/visit" {
		t.Errorf("DefaultClassification = %+v", got)
	}
}
