package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/finecheck/internal/render"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file|-]",
	Short: "Classify an analysis document into a verdict",
	Long: `Classify reads an analysis document from a file, or from stdin when the
argument is "-" or missing, and prints the verdict card.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(cmd, args)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		v := a.analysis.Classify(cmd.Context(), text, a.locale)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), v)
		}
		trace, _ := cmd.Flags().GetBool("trace")
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), render.Verdict(v, render.Options{Trace: trace}))
		return err
	},
}

func init() {
	classifyCmd.Flags().Bool("trace", false, "Show which pass decided the category")
	classifyCmd.Flags().Bool("json", false, "Print the verdict as JSON")
}

func readDocument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
