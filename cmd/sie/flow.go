package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blyfoten/SankeySaldo/internal/flow"
	"github.com/blyfoten/SankeySaldo/internal/sie"
)

// newFlowCmd creates the flow command: parse one SIE file and print the
// balance flow diagram as a source/target table.
func newFlowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flow <file>",
		Short: "Print the balance flow diagram for a SIE file",
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

			g := flow.Summarize(txns, meta.Accounts)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tTARGET\tAMOUNT\tCOLOR")
			for _, row := range g.Rows() {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", row.Source, row.Target, row.Value, row.Color)
			}
			return w.Flush()
		},
	}
}
