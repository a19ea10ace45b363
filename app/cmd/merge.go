package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timeprof/internal"
)

func newMergeCmd() *cobra.Command {
	mergeCmd := &cobra.Command{
		Use:   "merge <dataset-file> <dataset-file2> [dataset-file3...]",
		Short: "Merge dataset files into one multi-series file",
		Long: `Combine the series of several dataset (.js) files into a single file, so
the viewer plots them side by side. All inputs must use the same time
unit label.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			var (
				output  string
				verbose bool
			)
			parseFlags(cmd, map[string]any{
				"output":  &output,
				"verbose": &verbose,
			})

			datasets, err := internal.LoadDatasetFiles(args)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			merged, err := internal.MergeDatasets(datasets)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			if err := internal.WriteDatasetFile(stdout, merged, output); err != nil {
				cmd.SilenceUsage = true
				return err
			}

			if verbose && output != "" && output != "-" {
				fmt.Fprintf(stderr, "Merged %d series from %d files into %s\n",
					len(merged.Series), len(args), output)
			}

			return nil
		},
	}

	mergeCmd.Flags().StringP("output", "o", "", "Output file (optional, defaults to stdout)")
	mergeCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	return mergeCmd
}

var mergeCmd = newMergeCmd()

func init() {
	rootCmd.AddCommand(mergeCmd)
}
