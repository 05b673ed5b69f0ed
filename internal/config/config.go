// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/abhisek/hairharmony/internal/season"
)

type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`

	// DBPath is the SQLite file. Empty uses the store's default location.
	DBPath string `env:"DB_PATH"`

	// CheckoutURL replaces the built-in payment link when set.
	CheckoutURL string `env:"CHECKOUT_URL"`

	PDF PDFConfig `envPrefix:"PDF_"`

	// LLMTimeout bounds one external classification.
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"15s"`

	// DisableLLM forces every analysis through the rules engine.
	DisableLLM bool `env:"DISABLE_LLM" envDefault:"false"`

	CacheSize int `env:"CACHE_SIZE" envDefault:"512"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// PDFConfig overrides the guide link for individual seasons.
type PDFConfig struct {
	Spring string `env:"SPRING_URL"`
	Summer string `env:"SUMMER_URL"`
	Autumn string `env:"AUTUMN_URL"`
	Winter string `env:"WINTER_URL"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("ADDRESS must not be empty")
	}
	if c.LLMTimeout < 0 {
		return fmt.Errorf("LLM_TIMEOUT must not be negative, got %s", c.LLMTimeout)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.CacheSize)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// PDFs returns the configured guide overrides keyed by season. Seasons with
// no override are absent.
func (c Config) PDFs() map[season.Season]string {
	out := make(map[season.Season]string, 4)
	for s, u := range map[season.Season]string{
		season.Spring: c.PDF.Spring,
		season.Summer: c.PDF.Summer,
		season.Autumn: c.PDF.Autumn,
		season.Winter: c.PDF.Winter,
	} {
		if u != "" {
			out[s] = u
		}
	}
	return out
}
