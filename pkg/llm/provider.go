package llm

import (
	"context"
)

// Completion is the provider-agnostic result of one chat completion
type Completion struct {
	Content      string
	InputTokens  int
	OutputTokens int
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature  float64
	MaxTokens    int
	Model        string // Override default model
	JSONResponse bool   // Ask the model for a strict JSON object
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithJSONResponse() Option {
	return func(o *Options) {
		o.JSONResponse = true
	}
}

// Provider defines the contract for any LLM backend.
// A single capability: complete a system prompt + user prompt pair.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, options ...Option) (*Completion, error)
}
