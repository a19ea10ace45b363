package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timeprof/internal"
)

func newArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive <dataset-file> [dataset-file2...]",
		Short: "Append dataset files to a CBOR archive",
		Long: `Append one or more dataset (.js) files as records to a compact CBOR
archive. The archive grows by appending, so repeated profiling runs can
share one file; use 'export' to turn it back into a viewer dataset.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := internal.AppendArchive(output, datasets); err != nil {
				cmd.SilenceUsage = true
				return err
			}

			if verbose {
				fmt.Fprintf(stderr, "Appended %d records to %s\n", len(datasets), output)
			}

			return nil
		},
	}

	archiveCmd.Flags().StringP("output", "o", "", "Archive file to append to (required)")
	archiveCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	if err := archiveCmd.MarkFlagRequired("output"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to mark 'output' flag as required: %v\n", err)
		os.Exit(1)
	}

	return archiveCmd
}

var archiveCmd = newArchiveCmd()

func init() {
	rootCmd.AddCommand(archiveCmd)
}
