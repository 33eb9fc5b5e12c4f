package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/finecheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent classifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryClassifications(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query classifications: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No classifications recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-8s  %-14s  %-3s  %-12s  %-11s  %s\n",
			"Seq", "Timestamp", "Source", "Report", "Loc", "Category", "Pass", "Terms")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, e := range events {
			fmt.Fprintf(out, "%-5d  %-19s  %-8s  %-14s  %-3s  %-12s  %-11s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Source,
				truncate(e.ReportNumber, 14),
				e.Locale,
				e.Category,
				e.Pass,
				truncate(strings.Join(e.Terms, ", "), 30),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of classifications to show")
}
