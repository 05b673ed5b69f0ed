package llm

import (
	"cmp"
	"fmt"
)

const (
	openrouterName           = "openrouter"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible endpoint.
// Model IDs are vendor-prefixed ("openai/gpt-4o-mini") and sent as given.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openrouter model is required")
	}
	return newChatProvider(openrouterName, cfg.APIKey, cmp.Or(cfg.BaseURL, defaultOpenRouterBaseURL), cfg.Model), nil
}
