package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hairharmony/internal/analysis"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect saved analysis results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently saved results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ResultRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No results saved yet.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-7s  %4s  %-6s  %s\n",
			"Client Key", "Saved", "Season", "Conf", "Source", "Fallback")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, r := range recs {
			fallback := ""
			if r.Fallback {
				fallback = "yes"
			}
			fmt.Fprintf(out, "%-36s  %-19s  %-7s  %3d%%  %-6s  %s\n",
				truncate(r.ClientKey, 36),
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Season,
				r.Confidence,
				r.Source,
				fallback,
			)
		}
		return nil
	},
}

var resultsGetCmd = &cobra.Command{
	Use:   "get <client-key>",
	Short: "Print the saved result for a client key as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.ResultRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no result saved for %q", args[0])
		}

		res, err := analysis.ResultFromRecord(rec)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

var resultsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how saved results split across seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.ResultRepo().CountBySeason(cmd.Context())
		if err != nil {
			return fmt.Errorf("count results: %w", err)
		}

		total := 0
		for _, c := range counts {
			total += c.Count
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %6s  %6s\n", "Season", "Count", "Share")
		fmt.Fprintln(out, strings.Repeat("─", 24))
		for _, c := range counts {
			share := 0.0
			if total > 0 {
				share = float64(c.Count) * 100 / float64(total)
			}
			fmt.Fprintf(out, "%-8s  %6d  %5.1f%%\n", c.Season, c.Count, share)
		}
		fmt.Fprintln(out, strings.Repeat("─", 24))
		fmt.Fprintf(out, "%-8s  %6d\n", "TOTAL", total)
		return nil
	},
}

var resultsDeleteCmd = &cobra.Command{
	Use:   "delete <client-key>",
	Short: "Delete the saved result for a client key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ResultRepo().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete result: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted result for %q.\n", args[0])
		return nil
	},
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsGetCmd)
	resultsCmd.AddCommand(resultsStatsCmd)
	resultsCmd.AddCommand(resultsDeleteCmd)
}
