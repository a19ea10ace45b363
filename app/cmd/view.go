package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"timeprof/internal"
)

func newViewCmd() *cobra.Command {
	viewCmd := &cobra.Command{
		Use:   "view <dataset-file> [dataset-file2...]",
		Short: "View summary statistics of dataset files",
		Long: `Read one or more line-chart dataset (.js) files and display per-series
summary statistics (samples, total, min, max, mean, stddev).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			var asJSON bool
			parseFlags(cmd, map[string]any{
				"json": &asJSON,
			})

			for i, filename := range args {
				ds, err := internal.LoadDatasetFile(filename)
				if err != nil {
					cmd.SilenceUsage = true
					return err
				}

				if asJSON {
					out := struct {
						File      string                   `json:"file"`
						TimeUnits string                   `json:"timeUnits"`
						Series    []internal.SeriesSummary `json:"series"`
					}{filename, ds.TimeUnits, internal.SummarizeDataset(ds)}

					data, err := json.MarshalIndent(out, "", "  ")
					if err != nil {
						cmd.SilenceUsage = true
						return fmt.Errorf("failed to marshal statistics: %w", err)
					}
					fmt.Fprintln(stdout, string(data))
					continue
				}

				if i > 0 {
					fmt.Fprintln(stdout)
				}
				fmt.Fprintf(stdout, "Statistics for %s:\n", filename)
				if err := internal.OutputDatasetStats(stdout, ds); err != nil {
					cmd.SilenceUsage = true
					return err
				}
			}

			return nil
		},
	}

	viewCmd.Flags().BoolP("json", "j", false, "JSON output")

	return viewCmd
}

var viewCmd = newViewCmd()

func init() {
	rootCmd.AddCommand(viewCmd)
}
