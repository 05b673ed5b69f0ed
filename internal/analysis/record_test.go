package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/store"
)

func TestRecordRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	answers := quiz.Answers{quiz.SkinTone: "warm-tan", quiz.HairColor: "dark-brown", quiz.ClothingColors: "warm-tones"}
	res := svc.Analyze(t.Context(), answers)

	rec, err := NewRecord("client-1", answers, res)
	require.NoError(t, err)
	assert.Equal(t, "client-1", rec.ClientKey)
	assert.Equal(t, "autumn", rec.Season)
	assert.Equal(t, "rules", rec.Source)
	assert.True(t, rec.Fallback)
	assert.Equal(t, map[string]string{"1": "warm-tan", "2": "dark-brown", "6": "warm-tones"}, rec.Answers)
	assert.Equal(t, fixedNow, rec.CreatedAt)

	back, err := ResultFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, res.Season, back.Season)
	assert.Equal(t, res.Confidence, back.Confidence)
	assert.Equal(t, res.Reasoning, back.Reasoning)
	assert.Equal(t, res.Override, back.Override)
	require.NotNil(t, back.Scores)
	assert.Equal(t, *res.Scores, *back.Scores)
	assert.True(t, res.Timestamp.Equal(back.Timestamp))
}

func TestResultFromRecord_Columns(t *testing.T) {
	rec := &store.ResultRecord{
		ClientKey:  "k",
		Season:     "summer",
		Confidence: 77,
		Reasoning:  "Soft coloring.",
		Source:     "llm",
	}
	res, err := ResultFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, season.Summer, res.Season)
	assert.Equal(t, 77, res.Confidence)
	assert.Equal(t, SourceLLM, res.Source)
	assert.True(t, res.FullAnalysis)
}

func TestResultFromRecord_Corrupt(t *testing.T) {
	_, err := ResultFromRecord(&store.ResultRecord{ClientKey: "k", FullAnalysis: "{"})
	assert.Error(t, err)
}
