package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"text/template"

	"github.com/abhisek/hairharmony/internal/llm"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

var (
	// ErrInvalidSeason means the external classifier answered with a label
	// outside the four seasons.
	ErrInvalidSeason = errors.New("invalid season label")

	// ErrNoClassifier means no external classifier is configured.
	ErrNoClassifier = errors.New("no external classifier configured")
)

// Verdict is an external classifier's answer.
type Verdict struct {
	Season     season.Season `json:"season"`
	Confidence int           `json:"confidence"`
	Reasoning  string        `json:"reasoning"`
}

// ExternalClassifier is the fallible first stage of the pipeline. Any error
// sends the submission to the rules engine.
type ExternalClassifier interface {
	ClassifySeason(ctx context.Context, answers quiz.Answers) (Verdict, error)
}

// ClassifierConfig holds configuration for the LLM classifier.
type ClassifierConfig struct {
	MaxTokens   int
	Temperature float64

	// DefaultConfidence is reported when the model omits a usable confidence.
	DefaultConfidence int
}

// DefaultClassifierConfig returns sensible defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxTokens:         400,
		Temperature:       0.3,
		DefaultConfidence: 85,
	}
}

// LLMClassifier asks a language model for the season.
type LLMClassifier struct {
	provider llm.Provider
	cfg      ClassifierConfig
}

// NewLLMClassifier creates an LLM-backed classifier.
func NewLLMClassifier(provider llm.Provider, cfg ClassifierConfig) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	Season     string   `json:"season"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// ClassifySeason sends the labeled answers to the model and validates the
// returned label against the four seasons.
func (c *LLMClassifier) ClassifySeason(ctx context.Context, answers quiz.Answers) (Verdict, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSeasonAnalysis)

	prompt, err := buildVerdictPrompt(answers)
	if err != nil {
		return Verdict{}, fmt.Errorf("build season prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      verdictSystemPrompt,
		Prompt:      prompt,
		Schema:      VerdictSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("LLM season analysis failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Verdict{}, fmt.Errorf("failed to parse season response: %w", err)
	}

	s, err := season.Parse(raw.Season)
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %q", ErrInvalidSeason, raw.Season)
	}

	v := Verdict{
		Season:     s,
		Confidence: c.confidence(raw.Confidence),
		Reasoning:  raw.Reasoning,
	}
	if v.Reasoning == "" {
		v.Reasoning = fmt.Sprintf("Based on your quiz responses, you belong to the %s color palette.", s)
	}
	return v, nil
}

func (c *LLMClassifier) confidence(v *float64) int {
	if v == nil || *v <= 0 || *v > 100 || math.IsNaN(*v) {
		return c.cfg.DefaultConfidence
	}
	return int(math.Round(*v))
}

const verdictSystemPrompt = `You are a professional color analyst. Analyze the quiz responses and respond with valid JSON only. Focus on undertones (warm/cool) and contrast levels (low/high).`

var verdictUserTemplate = template.Must(template.New("verdict").Parse(`Analyze these quiz responses and determine the person's color season.

Quiz responses:
{{if .}}{{.}}{{else}}(no answers given)
{{end}}
Seasons:
- spring: warm undertones, light-medium contrast, clear bright colors
- summer: cool undertones, low-medium contrast, soft muted colors
- autumn: warm undertones, medium-high contrast, rich earthy colors
- winter: cool undertones, high contrast, deep vivid colors

Choose exactly one season: spring, summer, autumn or winter.
Respond with a JSON object: {"season": "...", "confidence": 0-100, "reasoning": "..."}`))

func buildVerdictPrompt(answers quiz.Answers) (string, error) {
	var buf bytes.Buffer
	if err := verdictUserTemplate.Execute(&buf, quiz.FormatLabeled(answers)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
