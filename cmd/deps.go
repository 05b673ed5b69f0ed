package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/config"
	"github.com/abhisek/hairharmony/internal/guides"
	"github.com/abhisek/hairharmony/internal/llm"
	"github.com/abhisek/hairharmony/internal/metrics"
	"github.com/abhisek/hairharmony/internal/store"
)

// serviceDeps holds what newService needs beyond the config.
type serviceDeps struct {
	store   *store.Store
	metrics *metrics.Metrics

	// useLLM tries to configure the external classifier.
	useLLM bool
}

// newService builds the analysis pipeline. A missing or broken LLM
// configuration leaves the service on the rules engine.
func newService(ctx context.Context, cfg config.Config, deps serviceDeps) *analysis.Service {
	opts := []analysis.Option{
		analysis.WithGuides(guides.New(cfg.PDFs(), cfg.CheckoutURL)),
		analysis.WithMetrics(deps.metrics),
	}

	logger := zerolog.Ctx(ctx)
	if deps.useLLM && !cfg.DisableLLM {
		classifier, model, err := newClassifier(ctx, deps.store)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			logger.Info().Msg("no LLM provider configured, using the rules engine")
		case err != nil:
			logger.Warn().Err(err).Msg("LLM provider unavailable, using the rules engine")
		default:
			logger.Info().Str("model", model).Msg("season analysis uses the LLM classifier")
			opts = append(opts, analysis.WithClassifier(classifier))
		}
	}

	return analysis.NewService(analysis.Config{
		Timeout:   cfg.LLMTimeout,
		CacheSize: cfg.CacheSize,
	}, opts...)
}

// newClassifier builds the LLM classifier. Each submission gets a single
// attempt; the rules engine is the retry.
func newClassifier(ctx context.Context, st *store.Store) (*analysis.LLMClassifier, string, error) {
	lcfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, "", err
	}
	lcfg.Retry.MaxAttempts = 1

	var events store.EventRepo
	if st != nil {
		events = st.EventRepo()
	}
	provider, err := llm.NewProvider(ctx, lcfg, events)
	if err != nil {
		return nil, "", fmt.Errorf("build LLM provider: %w", err)
	}
	return analysis.NewLLMClassifier(provider, analysis.DefaultClassifierConfig()), provider.ModelID(), nil
}
