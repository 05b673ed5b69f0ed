package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "classify", RunE: func(*cobra.Command, []string) error { return nil }}
	c.Flags().String("answers", "", "")
	for _, q := range quiz.Questions() {
		c.Flags().String(questionFlag(q.ID), "", q.Label)
	}
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestAnswersFromFlags_JSON(t *testing.T) {
	c := newFlagCmd(t, "--answers", `{"1":"fair-pink","3":"blue","x":"ignored"}`)

	got, err := answersFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, quiz.Answers{quiz.SkinTone: "fair-pink", quiz.EyeColor: "blue"}, got)
}

func TestAnswersFromFlags_QuestionFlagsWin(t *testing.T) {
	c := newFlagCmd(t, "--answers", `{"1":"fair-pink"}`, "--q1", "deep-brown", "--q2", "black")

	got, err := answersFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, "deep-brown", got.Get(quiz.SkinTone))
	assert.Equal(t, "black", got.Get(quiz.HairColor))
}

func TestAnswersFromFlags_BadJSON(t *testing.T) {
	c := newFlagCmd(t, "--answers", `{"1":`)
	_, err := answersFromFlags(c)
	assert.Error(t, err)
}

func TestPrintJSON_Evaluation(t *testing.T) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	ev := season.Evaluate(quiz.Answers{quiz.SkinTone: "fair-pink", quiz.HairColor: "blonde", quiz.EyeColor: "blue"})
	require.NoError(t, printJSON(c, ev))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "spring", decoded["season"])
	assert.Equal(t, "fair-blonde-light-eyes", decoded["override"])
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "hairharmony (devel)\n", buf.String())
}
