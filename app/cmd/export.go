package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timeprof/internal"
	"timeprof/profiler"
)

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export <archive-file>",
		Short: "Export a CBOR archive as a viewer dataset file",
		Long: `Read a CBOR archive, merge the series of all its records and write a
dataset (.js) file the viewer can load. All records must share the same
time unit label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			filename := args[0]

			var (
				output  string
				verbose bool
			)
			parseFlags(cmd, map[string]any{
				"output":  &output,
				"verbose": &verbose,
			})

			entries, err := internal.LoadArchive(filename)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			datasets := make([]profiler.Dataset, 0, len(entries))
			for _, entry := range entries {
				datasets = append(datasets, entry.Dataset())
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
				fmt.Fprintf(stderr, "Exported %d records (%d series) to %s\n",
					len(entries), len(merged.Series), output)
			}

			return nil
		},
	}

	exportCmd.Flags().StringP("output", "o", "", "Output file (optional, defaults to stdout)")
	exportCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	return exportCmd
}

var exportCmd = newExportCmd()

func init() {
	rootCmd.AddCommand(exportCmd)
}
