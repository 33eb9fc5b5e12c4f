package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/abhisek/finecheck/internal/render"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <report>",
	Short: "Ask the LLM whether a stored fine is worth contesting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		r, err := a.fines.Get(ctx, args[0])
		if err != nil {
			return err
		}
		refresh, _ := cmd.Flags().GetBool("refresh")
		res, err := a.analysis.Analyze(ctx, r, a.locale, refresh)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		trace, _ := cmd.Flags().GetBool("trace")
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), render.Analysis(res, render.Options{Trace: trace}))
		return err
	},
}

func init() {
	analyzeCmd.Flags().Bool("refresh", false, "Ignore the cached analysis and ask again")
	analyzeCmd.Flags().Bool("trace", false, "Show which pass decided the category")
	analyzeCmd.Flags().Bool("json", false, "Print the analysis as JSON")
}
