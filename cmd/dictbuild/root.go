package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dictbuild/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.RunOptions

	cmd := &cobra.Command{
		Use:           "dictbuild",
		Short:         "Build offline dictionary artifacts from Wiktionary, CC-CEDICT and JMdict",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       app.BuildVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Sample, "sample", false, "Use bundled fixtures instead of downloading sources")
	f.BoolVar(&opts.Force, "force", false, "Overwrite existing artifacts and re-download cached raw sources")
	f.StringVar(&opts.RawDir, "raw", "", "Raw source cache directory (overrides build.raw_dir)")
	f.StringVar(&opts.ResourcesDir, "out", "", "Output resources directory (overrides build.resources_dir)")
	f.StringSliceVar(&opts.Languages, "languages", nil, "Comma-separated languages to build (default all)")
	f.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dictbuild version %s\n", app.BuildVersion())
		},
	}
}
