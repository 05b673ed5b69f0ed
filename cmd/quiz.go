package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/hairharmony/internal/app"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the color season quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

// runQuiz opens the store, builds the analysis service and launches the TUI.
// Logging stays unconfigured since the TUI owns the terminal; LLM calls are
// still recorded as events in the store.
func runQuiz(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := newService(cmd.Context(), cfg, serviceDeps{store: st, useLLM: true})
	return app.Run(svc, st.ResultRepo())
}
