package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const envPrefix = "HAIRHARMONY_"

// Config selects and configures the LLM provider. Every field is read
// from a HAIRHARMONY_-prefixed environment variable.
type Config struct {
	// Provider is "anthropic", "openai", "gemini" or "openrouter". Empty
	// lets ResolveConfig choose from the keys that are present.
	Provider string `env:"LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `envPrefix:"ANTHROPIC_"`
	OpenAI     OpenAIConfig     `envPrefix:"OPENAI_"`
	Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
	OpenRouter OpenRouterConfig `envPrefix:"OPENROUTER_"`
	Retry      RetryConfig      `envPrefix:"LLM_RETRY_"`
}

type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"claude-haiku"`
}

type OpenAIConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gpt-4o-mini"`

	// BaseURL points the client at a compatible API.
	BaseURL string `env:"BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-flash"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"openai/gpt-4o-mini"`
	BaseURL string `env:"BASE_URL"`
}

// RetryConfig shapes the backoff of RetryProvider.
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MULTIPLIER" envDefault:"2"`
}

// providerOrder is the order ResolveConfig tries providers in.
var providerOrder = []string{"openai", "gemini", "anthropic", "openrouter"}

// ConfigFromEnv reads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	return parseConfig(nil)
}

// parseConfig reads Config from environ, or from the process environment
// when environ is nil.
func parseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse LLM config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	key := c.keyFor(c.Provider)
	if key == nil {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", envPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

// Model is the configured model of the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.Model
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return c.Gemini.Model
	case "openrouter":
		return c.OpenRouter.Model
	}
	return ""
}

func (c *Config) keyFor(provider string) *string {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "gemini":
		return &c.Gemini.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

// ResolveConfig picks the provider from the process environment. An
// explicit HAIRHARMONY_LLM_PROVIDER must validate. Otherwise the first
// provider with a HAIRHARMONY_ key wins, then the first with the vendor's
// own variable (OPENAI_API_KEY and so on). ErrNotConfigured means none
// was found.
func ResolveConfig() (Config, error) {
	return resolveConfig(nil)
}

func resolveConfig(environ map[string]string) (Config, error) {
	cfg, err := parseConfig(environ)
	if err != nil {
		return Config{}, err
	}
	if cfg.Provider != "" {
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, p := range providerOrder {
		if *cfg.keyFor(p) != "" {
			cfg.Provider = p
			return cfg, nil
		}
	}

	lookup := os.Getenv
	if environ != nil {
		lookup = func(k string) string { return environ[k] }
	}
	for _, p := range providerOrder {
		if k := lookup(strings.ToUpper(p) + "_API_KEY"); k != "" {
			cfg.Provider = p
			*cfg.keyFor(p) = k
			return cfg, nil
		}
	}
	return Config{}, ErrNotConfigured
}
