package main

import (
	"fmt"

	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/spf13/cobra"
)

func createListUnusedCmd() *cobra.Command {
	var showLocation bool

	listCmd := &cobra.Command{
		Use:     "list-unused",
		Aliases: []string{"ls-unused"},
		Short:   "List unused strings",
		Long: `List the unused strings of the last index in lexicographic order.

Examples:
  aster list-unused
  aster ls-unused --show-location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asterManager, err := cli.NewAster()
			if err != nil {
				return err
			}

			unused, err := asterManager.ListUnused()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, str := range unused {
				_, _ = fmt.Fprintln(out, str.ID)
				if !showLocation {
					continue
				}
				for _, path := range str.Locations {
					_, _ = fmt.Fprintf(out, "  %s\n", path)
				}
			}

			return nil
		},
	}

	listCmd.Flags().BoolVarP(&showLocation, "show-location", "s", false, "Show the files declaring each string")

	return listCmd
}
