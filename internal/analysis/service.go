// Package analysis runs the two-stage season pipeline: an optional external
// classifier first, the deterministic rules engine whenever it is absent or
// fails.
package analysis

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/hairharmony/internal/guides"
	"github.com/abhisek/hairharmony/internal/llm"
	"github.com/abhisek/hairharmony/internal/metrics"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

// Config holds pipeline settings.
type Config struct {
	// Timeout bounds a single external classification. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration

	// CacheSize is the number of external verdicts kept, keyed by the
	// normalized answers. Zero disables the cache.
	CacheSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   15 * time.Second,
		CacheSize: 512,
	}
}

// Service classifies answer sets. It is safe for concurrent use.
type Service struct {
	classifier ExternalClassifier
	guides     *guides.Catalog
	metrics    *metrics.Metrics
	cfg        Config
	cache      *lru.Cache[string, Verdict]
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClassifier sets the external classifier. Without one every analysis
// comes from the rules engine.
func WithClassifier(c ExternalClassifier) Option {
	return func(s *Service) { s.classifier = c }
}

// WithGuides replaces the default guide catalog.
func WithGuides(g *guides.Catalog) Option {
	return func(s *Service) {
		if g != nil {
			s.guides = g
		}
	}
}

// WithMetrics records analysis outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		guides: guides.DefaultCatalog(),
		cfg:    cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.classifier != nil && cfg.CacheSize > 0 {
		// lru.New only fails on a non-positive size.
		s.cache, _ = lru.New[string, Verdict](cfg.CacheSize)
	}
	return s
}

// HasClassifier reports whether an external classifier is configured.
func (s *Service) HasClassifier() bool {
	return s.classifier != nil
}

// Guides returns the guide catalog in use.
func (s *Service) Guides() *guides.Catalog {
	return s.guides
}

// Analyze returns the full analysis for answers. It never fails: any
// external classifier problem is absorbed by the rules engine.
func (s *Service) Analyze(ctx context.Context, answers quiz.Answers) *Result {
	start := time.Now()
	answers = answers.Normalize()
	logger := zerolog.Ctx(ctx)

	var res *Result
	v, err := s.external(ctx, answers)
	if err == nil {
		res = &Result{
			Season:     v.Season,
			Confidence: v.Confidence,
			Reasoning:  v.Reasoning,
			Source:     SourceLLM,
		}
	} else {
		if !errors.Is(err, ErrNoClassifier) {
			reason := failureReason(err)
			s.metrics.IncExternalFailure(reason)
			logger.Warn().Err(err).Str("reason", reason).Msg("external classifier failed, using rules engine")
		}
		res = s.rules(answers)
	}

	res.PDFURL = s.guides.PDFURL(res.Season)
	res.FullAnalysis = true
	res.Timestamp = s.now()

	s.metrics.ObserveAnalysis(res.Season.String(), string(res.Source), res.Fallback, time.Since(start))
	logger.Info().
		Str("season", res.Season.String()).
		Str("source", string(res.Source)).
		Bool("fallback", res.Fallback).
		Int("confidence", res.Confidence).
		Msg("season analysis complete")

	return res
}

// Classify returns only the season for answers, with the same fallback
// behavior as Analyze.
func (s *Service) Classify(ctx context.Context, answers quiz.Answers) season.Season {
	return s.Analyze(ctx, answers).Season
}

// Preview returns the censored analysis. The hidden season comes from the
// rules engine, so a preview never waits on the external classifier.
func (s *Service) Preview(ctx context.Context, answers quiz.Answers) *Preview {
	ev := season.Evaluate(answers.Normalize())
	zerolog.Ctx(ctx).Debug().Str("season", ev.Season.String()).Msg("season preview")

	return &Preview{
		Season:        maskedSeason,
		Confidence:    maskedConfidence,
		Reasoning:     previewReasoning,
		IsPreview:     true,
		PreviewSeason: ev.Season,
		CheckoutURL:   s.guides.CheckoutURL(),
		Message:       previewMessage,
		Features:      s.guides.Features(),
	}
}

func (s *Service) external(ctx context.Context, answers quiz.Answers) (Verdict, error) {
	if s.classifier == nil {
		return Verdict{}, ErrNoClassifier
	}

	key := answers.Fingerprint()
	if s.cache != nil {
		v, ok := s.cache.Get(key)
		s.metrics.ObserveCacheLookup(ok)
		if ok {
			return v, nil
		}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	v, err := s.classifier.ClassifySeason(ctx, answers)
	if err != nil {
		return Verdict{}, err
	}
	if !v.Season.Valid() {
		return Verdict{}, ErrInvalidSeason
	}

	if s.cache != nil {
		s.cache.Add(key, v)
	}
	return v, nil
}

func (s *Service) rules(answers quiz.Answers) *Result {
	ev := season.Evaluate(answers)
	scores := ev.Scores
	return &Result{
		Season:     ev.Season,
		Confidence: ev.Confidence(),
		Reasoning:  rulesReasoning(answers, ev),
		Source:     SourceRules,
		Fallback:   true,
		Scores:     &scores,
		Override:   ev.Override,
	}
}

// failureReason buckets an external classifier error for metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrInvalidSeason):
		return "invalid_season"
	}
	if kind, ok := llm.KindOf(err); ok {
		return kind.String()
	}
	return "other"
}
