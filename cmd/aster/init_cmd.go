package main

import (
	"github.com/lerenn/aster/cmd/aster/internal/cli"
	"github.com/lerenn/aster/pkg/aster"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var opts aster.InitOpts

	initCmd := &cobra.Command{
		Use:   "init [--force] [--cache-dir <path>]",
		Short: "Write the default configuration",
		Long: `Write the default configuration file to the config path.

Flags:
  --force       Overwrite an existing configuration file
  --cache-dir   Set the cache directory of the written configuration`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			asterManager, err := cli.NewInitAster()
			if err != nil {
				return err
			}

			opts.CacheDir = cli.CacheDir
			return asterManager.Init(opts)
		},
	}

	initCmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
