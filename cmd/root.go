package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/hairharmony/internal/config"
	"github.com/abhisek/hairharmony/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hairharmony",
	Short: "Color season quiz and analysis",
	Long:  "Hair Harmony classifies a short appearance quiz into one of four color seasons, with an optional AI stylist in front of a deterministic rules engine.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DB_PATH and HAIRHARMONY_DB)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DB_PATH from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	return st, cfg, nil
}
