package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/store"
)

// NewRecord converts a result into its stored form under key.
func NewRecord(key string, answers quiz.Answers, res *Result) (*store.ResultRecord, error) {
	full, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &store.ResultRecord{
		ClientKey:    key,
		Season:       res.Season.String(),
		Confidence:   res.Confidence,
		Reasoning:    res.Reasoning,
		FullAnalysis: string(full),
		PDFURL:       res.PDFURL,
		Source:       string(res.Source),
		Fallback:     res.Fallback,
		Answers:      answers.ToMap(),
		CreatedAt:    res.Timestamp,
	}, nil
}

// ResultFromRecord restores a stored result. Records without a full
// analysis payload are rebuilt from their columns.
func ResultFromRecord(rec *store.ResultRecord) (*Result, error) {
	if rec.FullAnalysis != "" {
		var res Result
		if err := json.Unmarshal([]byte(rec.FullAnalysis), &res); err != nil {
			return nil, fmt.Errorf("decode stored result %q: %w", rec.ClientKey, err)
		}
		return &res, nil
	}
	return &Result{
		Season:       season.Season(rec.Season),
		Confidence:   rec.Confidence,
		Reasoning:    rec.Reasoning,
		PDFURL:       rec.PDFURL,
		Source:       Source(rec.Source),
		Fallback:     rec.Fallback,
		FullAnalysis: true,
		Timestamp:    rec.CreatedAt,
	}, nil
}
