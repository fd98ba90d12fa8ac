package factory

import (
	"fmt"

	"github.com/jvalenzano/forestgpt-app/pkg/llm"
	"github.com/jvalenzano/forestgpt-app/pkg/llm/ollama"
	"github.com/jvalenzano/forestgpt-app/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, apiKey, baseURL string) (llm.Provider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, modelName, baseURL), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
