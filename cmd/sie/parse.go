package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blyfoten/SankeySaldo/internal/report"
	"github.com/blyfoten/SankeySaldo/internal/sie"
)

// newParseCmd creates the parse command: read one SIE file and print the
// company info, diagnostics and transaction table.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a SIE file and print its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			txns, meta, err := sie.Parse(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Company:      %s\n", meta.CompanyName)
			fmt.Fprintf(out, "Fiscal year:  %s\n", meta.FiscalYear)
			fmt.Fprintf(out, "Accounts:     %d\n", len(meta.Accounts))
			fmt.Fprintf(out, "Transactions: %d\n\n", len(txns))

			for _, line := range meta.ParsingDetails {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tACCOUNT\tAMOUNT\tDESCRIPTION\tVER")
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s %s\n",
					t.Date, t.Account, t.Amount, t.Description, t.VerSeries, t.VerNumber)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			s := report.Summarize(txns, meta.Accounts)
			fmt.Fprintf(out, "\nTotal debit:  %.2f kr\nTotal credit: %.2f kr\n", s.TotalDebit, s.TotalCredit)
			return nil
		},
	}
}
