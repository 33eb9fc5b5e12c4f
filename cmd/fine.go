package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/finecheck/internal/fines"
	"github.com/spf13/cobra"
)

var fineCmd = &cobra.Command{
	Use:   "fine",
	Short: "Manage stored fine reports",
}

var fineAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a fine report from flags or a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var r fines.Report
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			if err := json.Unmarshal(data, &r); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
		}
		overlay := map[string]*string{
			"report":      &r.ReportNumber,
			"date":        &r.Date,
			"location":    &r.Location,
			"violation":   &r.Violation,
			"amount":      &r.Amount,
			"due-date":    &r.DueDate,
			"officer":     &r.OfficerName,
			"badge":       &r.BadgeNumber,
			"description": &r.Description,
		}
		for flag, field := range overlay {
			if cmd.Flags().Changed(flag) {
				*field, _ = cmd.Flags().GetString(flag)
			}
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		added, err := a.fines.Add(cmd.Context(), r)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored fine %s.\n", added.ReportNumber)
		return nil
	},
}

var fineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored fine reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.fines.List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No fines stored.")
			return nil
		}

		fmt.Fprintf(out, "%-14s  %-10s  %-10s  %s\n", "Report", "Date", "Amount", "Violation")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range list {
			fmt.Fprintf(out, "%-14s  %-10s  %-10s  %s\n",
				truncate(r.ReportNumber, 14), r.Date, truncate(r.Amount, 10), truncate(r.Violation, 40))
		}
		return nil
	},
}

var fineShowCmd = &cobra.Command{
	Use:   "show <report>",
	Short: "Show one fine report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		r, err := a.fines.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), r)
		}

		out := cmd.OutOrStdout()
		for _, row := range [][2]string{
			{"Report", r.ReportNumber},
			{"Date", r.Date},
			{"Location", r.Location},
			{"Violation", r.Violation},
			{"Amount", r.Amount},
			{"Due date", r.DueDate},
			{"Officer", r.OfficerName},
			{"Badge", r.BadgeNumber},
			{"Notes", r.Description},
		} {
			if row[1] != "" {
				fmt.Fprintf(out, "%-10s %s\n", row[0]+":", row[1])
			}
		}
		return nil
	},
}

var fineRemoveCmd = &cobra.Command{
	Use:     "rm <report>",
	Aliases: []string{"remove"},
	Short:   "Delete a fine report with its cached analyses and letters",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.fines.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed fine %s.\n", args[0])
		return nil
	},
}

func init() {
	fineAddCmd.Flags().StringP("file", "f", "", "JSON file holding the report")
	fineAddCmd.Flags().String("report", "", "Report number")
	fineAddCmd.Flags().String("date", "", "Date of the violation")
	fineAddCmd.Flags().String("location", "", "Where the violation happened")
	fineAddCmd.Flags().String("violation", "", "Violation type")
	fineAddCmd.Flags().String("amount", "", "Fine amount")
	fineAddCmd.Flags().String("due-date", "", "Payment due date")
	fineAddCmd.Flags().String("officer", "", "Issuing officer")
	fineAddCmd.Flags().String("badge", "", "Officer badge number")
	fineAddCmd.Flags().String("description", "", "Free-text notes")

	fineShowCmd.Flags().Bool("json", false, "Print the report as JSON")

	fineCmd.AddCommand(fineAddCmd)
	fineCmd.AddCommand(fineListCmd)
	fineCmd.AddCommand(fineShowCmd)
	fineCmd.AddCommand(fineRemoveCmd)
}
