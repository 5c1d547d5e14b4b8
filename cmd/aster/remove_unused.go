package main

import (
	"fmt"

	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/lerenn/aster/pkg/aster"
	"github.com/spf13/cobra"
)

func createRemoveUnusedCmd() *cobra.Command {
	var opts aster.RemoveUnusedOpts

	removeCmd := &cobra.Command{
		Use:     "remove-unused",
		Aliases: []string{"rm-unused"},
		Short:   "Remove unused strings from the resource files",
		Long: `Remove the declarations of the unused strings of the last index from every
resource file declaring them. Only the lines of each declaration are removed, the
rest of the file is left byte for byte.

Examples:
  aster remove-unused
  aster rm-unused --prefix legacy_ --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asterManager, err := cli.NewAster()
			if err != nil {
				return err
			}

			result, err := asterManager.RemoveUnused(opts)
			if result != nil && !cli.Quiet {
				printRemoveResult(cmd, result)
			}
			return err
		},
	}

	removeCmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Only remove strings starting with this prefix")
	removeCmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return removeCmd
}

func printRemoveResult(cmd *cobra.Command, result *aster.RemoveResult) {
	out := cmd.OutOrStdout()
	switch {
	case len(result.Candidates) == 0:
		_, _ = fmt.Fprintln(out, "No unused strings to remove")
	case result.Cancelled:
		_, _ = fmt.Fprintln(out, "Removal cancelled")
	default:
		for _, removal := range result.Removed {
			_, _ = fmt.Fprintf(out, "Removed %s from %s\n", removal.ID, removal.Path)
		}
	}
}
