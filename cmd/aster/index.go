package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/lerenn/aster/pkg/aster"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func createIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Index string declarations and usages",
		Long: `Walk the resource, source and manifest roots, record which strings each file
declares and references, and save the result for the other commands.

Examples:
  aster index -j app/src/main/java -r app/src/main/res
  aster index -j app/src/main/java -r app/src/main/res -m app/src/main`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cli.JavaRoot == "" || cli.ResRoot == "" {
				return fmt.Errorf("%w: --java-root and --res-root are required", aster.ErrMissingRoot)
			}

			asterManager, err := cli.NewAster()
			if err != nil {
				return err
			}

			stop := startSpinner("Indexing string resources...")
			result, err := asterManager.Index(aster.IndexOpts{
				SourceRoot:   cli.JavaRoot,
				ResRoot:      cli.ResRoot,
				ManifestRoot: cli.ManifestRoot,
			})
			stop()
			if err != nil {
				return err
			}

			if cli.Quiet {
				return nil
			}

			printIndexResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printIndexResult(out io.Writer, result *aster.IndexResult) {
	for _, walk := range result.Walks {
		_, _ = fmt.Fprintf(out, "Indexed %d %s files under %s in %s\n",
			walk.Files, walk.Kind, walk.Root, walk.Duration.Round(time.Millisecond))
	}
	_, _ = fmt.Fprintf(out, "%d defined strings, %d used strings\n", result.Defined, result.Used)
	_, _ = fmt.Fprintf(out, "Index saved to %s\n", result.SnapshotPath)
}

// startSpinner shows a spinner until the returned function is called.
// Nothing is shown in quiet or verbose mode.
func startSpinner(text string) func() {
	if cli.Quiet || cli.Verbose {
		return func() {}
	}

	spinner, err := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true).
		Start(text)
	if err != nil {
		return func() {}
	}

	return func() { _ = spinner.Stop() }
}
