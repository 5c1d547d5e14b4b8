// Package main provides the command-line interface for aster.
package main

import (
	"log"

	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aster",
		Short: "Aster - Android string resource cleaner",
		Long: `Find the string resources of an Android project that nothing references ` +
			`and remove their declarations from the resource files.`,
		SilenceUsage: true,
	}

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cli.JavaRoot, "java-root", "j", "", "Root of the Java and Kotlin sources")
	flags.StringVarP(&cli.ResRoot, "res-root", "r", "", "Root of the resource files")
	flags.StringVarP(&cli.ManifestRoot, "manifest-root", "m", "", "Root of the manifest files (defaults to --res-root)")
	flags.StringVar(&cli.CacheDir, "cache-dir", "", "Directory holding the index snapshot")
	flags.StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	flags.BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(
		createIndexCmd(),
		createCountsCmd(),
		createListUnusedCmd(),
		createRemoveUnusedCmd(),
		createInitCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
