package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/hairharmony/internal/logging"
	"github.com/abhisek/hairharmony/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the quiz tools over MCP (stdio transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// stdout carries the protocol; logs go to stderr.
		if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}
		ctx := log.Logger.WithContext(cmd.Context())

		useLLM, _ := cmd.Flags().GetBool("llm")
		svc := newService(ctx, cfg, serviceDeps{store: st, useLLM: useLLM})

		log.Info().Bool("llm", svc.HasClassifier()).Msg("mcp server on stdio")
		return mcptool.ServeStdio(mcptool.NewServer(svc, version))
	},
}

func init() {
	mcpCmd.Flags().Bool("llm", false, "Allow full analyses to consult the configured LLM")
}
