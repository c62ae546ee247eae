package main

import "github.com/spf13/cobra"

// newRootCmd creates the root cobra.Command and mounts the subcommands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sie",
		Short:        "Parse SIE bookkeeping files and summarize balance flows",
		SilenceUsage: true,
	}
	root.AddCommand(
		newParseCmd(),
		newFlowCmd(),
		newServeCmd(),
	)
	return root
}
