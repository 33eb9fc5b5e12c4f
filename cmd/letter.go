package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/render"
	"github.com/spf13/cobra"
)

var letterCmd = &cobra.Command{
	Use:   "letter <report>",
	Short: "Draft a cancellation letter or a list of arguments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		mode, err := letters.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		info, _ := cmd.Flags().GetString("info")

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
		l, err := a.letters.Generate(ctx, r, info, mode, a.locale)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), l)
		}
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), render.Letter(l))
		return err
	},
}

func init() {
	letterCmd.Flags().StringP("mode", "m", string(letters.ModeFullLetter), "full_letter or arguments")
	letterCmd.Flags().String("info", "", "Extra context to include in the request")
	letterCmd.Flags().Bool("json", false, "Print the letter as JSON")
}
