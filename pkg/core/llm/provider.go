// Package llm abstracts the model providers the analysis tools can
// run against. Providers are stateless; credentials come in at
// construction, never from the environment.
package llm

import (
	"context"
	"fmt"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// NewProvider builds a provider by name. Model may be empty to use
// the provider's default.
func NewProvider(name, apiKey, model string) (Provider, error) {
	switch name {
	case "gemini":
		return &GeminiProvider{APIKey: apiKey, Model: model}, nil
	case "openai":
		return NewOpenAIProvider(apiKey, model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", name)
	}
}
