package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/hairharmony/internal/store"
)

// ErrNotConfigured means the environment names no usable provider. The
// caller runs without an external classifier.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider builds the provider cfg selects, wrapped as
// retry(logging(vendor)). events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, events), cfg.Retry), nil
}
