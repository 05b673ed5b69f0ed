package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/hairharmony/internal/logging"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify one set of quiz answers",
	Long: `Classify one set of quiz answers and print the result as JSON.

Answers come from --answers as a JSON object keyed by question id, or from
the --q1..--q11 flags, which take precedence. Without --llm the rules engine
decides and the output includes the per-season scores.`,
	Example: `  hairharmony classify --q1 fair-pink --q2 blonde --q3 blue
  hairharmony classify --answers '{"1":"deep-brown","2":"black","6":"cool-tones"}' --llm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := answersFromFlags(cmd)
		if err != nil {
			return err
		}

		useLLM, _ := cmd.Flags().GetBool("llm")
		if !useLLM {
			return printJSON(cmd, season.Evaluate(answers.Normalize()))
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}

		ctx := log.Logger.WithContext(cmd.Context())
		svc := newService(ctx, cfg, serviceDeps{store: st, useLLM: true})
		return printJSON(cmd, svc.Analyze(ctx, answers))
	},
}

// answersFromFlags merges --answers with the per-question flags.
func answersFromFlags(cmd *cobra.Command) (quiz.Answers, error) {
	answers := quiz.Answers{}

	if raw, _ := cmd.Flags().GetString("answers"); raw != "" {
		var m map[string]string
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("parse --answers: %w", err)
		}
		answers = quiz.ParseAnswers(m)
	}

	for _, q := range quiz.Questions() {
		name := questionFlag(q.ID)
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			answers[q.ID] = v
		}
	}
	return answers, nil
}

func questionFlag(id quiz.QuestionID) string {
	return "q" + strconv.Itoa(int(id))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	classifyCmd.Flags().String("answers", "", `Answers as JSON, e.g. {"1":"fair-pink"}`)
	classifyCmd.Flags().Bool("llm", false, "Ask the configured LLM first, falling back to the rules engine")
	for _, q := range quiz.Questions() {
		classifyCmd.Flags().String(questionFlag(q.ID), "", q.Label)
	}
}
