package analysis

import (
	"fmt"
	"time"

	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

// Source identifies which pipeline stage produced a result.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceRules Source = "rules"
)

// Result is a full, unlocked analysis.
type Result struct {
	Season       season.Season `json:"season"`
	Confidence   int           `json:"confidence"`
	Reasoning    string        `json:"reasoning"`
	PDFURL       string        `json:"pdfUrl"`
	Source       Source        `json:"source"`
	Fallback     bool          `json:"fallback"`
	FullAnalysis bool          `json:"fullAnalysis"`

	// Scores and Override are only set when the rules engine decided.
	Scores   *season.Scores `json:"scores,omitempty"`
	Override string         `json:"override,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Preview is the censored analysis shown before checkout.
type Preview struct {
	Season        string        `json:"season"`
	Confidence    string        `json:"confidence"`
	Reasoning     string        `json:"reasoning"`
	IsPreview     bool          `json:"isPreview"`
	PreviewSeason season.Season `json:"previewSeason"`
	CheckoutURL   string        `json:"checkoutUrl"`
	Message       string        `json:"message"`
	Features      []string      `json:"features"`
}

const (
	maskedSeason     = "*****"
	maskedConfidence = "**"

	previewReasoning = "Based on your undertones and contrast, you belong to the " + maskedSeason +
		" palette. Click the link below to get your personalized plan."
	previewMessage = "Your Hair Harmony analysis is ready! Click below to unlock your complete color guide."
)

func rulesReasoning(answers quiz.Answers, ev season.Evaluation) string {
	text := fmt.Sprintf(
		"Based on your responses (skin: %s, hair: %s, eyes: %s, clothing: %s), you belong to the %s palette. "+
			"This analysis considers your undertones, contrast levels, and color preferences.",
		answerOrUnset(answers, quiz.SkinTone),
		answerOrUnset(answers, quiz.HairColor),
		answerOrUnset(answers, quiz.EyeColor),
		answerOrUnset(answers, quiz.ClothingColors),
		ev.Season,
	)
	if ev.Override != "" {
		text += fmt.Sprintf(" Your combination of traits is a classic %s profile.", ev.Season.Title())
	}
	return text
}

func answerOrUnset(a quiz.Answers, id quiz.QuestionID) string {
	if v := a.Get(id); v != "" {
		return v
	}
	return "not answered"
}
