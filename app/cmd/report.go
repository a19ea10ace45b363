package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timeprof/internal"
)

func newReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report <dataset-file>",
		Short: "Generate a JSON report from a dataset file",
		Long: `Generate a JSON report with a unique identifier and per-series summary
statistics from a dataset (.js) file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			filename := args[0]

			var (
				source  string
				output  string
				verbose bool
			)
			parseFlags(cmd, map[string]any{
				"source":  &source,
				"output":  &output,
				"verbose": &verbose,
			})

			ds, err := internal.LoadDatasetFile(filename)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			report := internal.GenerateReport(ds, source)

			jsonData, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				cmd.SilenceUsage = true
				return fmt.Errorf("failed to generate JSON report: %w", err)
			}

			if output != "" && output != "-" {
				err = os.WriteFile(output, jsonData, 0o644) // #nosec G306
				if err != nil {
					cmd.SilenceUsage = true
					return fmt.Errorf("failed to write report to %s: %w", output, err)
				}
				if verbose {
					fmt.Fprintf(stderr, "Report written to %s\n", output)
				}
			} else {
				fmt.Fprintln(stdout, string(jsonData))
			}

			return nil
		},
	}

	reportCmd.Flags().StringP("source", "s", "", "Name of the workload that produced the samples (required)")
	reportCmd.Flags().StringP("output", "o", "", "Output file (optional, defaults to stdout)")
	reportCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	if err := reportCmd.MarkFlagRequired("source"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to mark 'source' flag as required: %v\n", err)
		os.Exit(1)
	}

	return reportCmd
}

var reportCmd = newReportCmd()

func init() {
	rootCmd.AddCommand(reportCmd)
}
