package main

import (
	"fmt"

	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/spf13/cobra"
)

func createCountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show the number of defined, used and unused strings",
		Long: `Show the number of defined, used and unused strings of the last index.
Denylisted strings are not counted as unused.

Examples:
  aster counts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asterManager, err := cli.NewAster()
			if err != nil {
				return err
			}

			counts, err := asterManager.Counts()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d defined strings\n", counts.Defined)
			_, _ = fmt.Fprintf(out, "%d used strings\n", counts.Used)
			_, _ = fmt.Fprintf(out, "%d unused strings\n", counts.Unused)
			return nil
		},
	}
}
