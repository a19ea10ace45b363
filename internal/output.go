package internal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"timeprof/profiler"
)

// formatValue prints sample values the way they appear in the dataset
// file: shortest representation that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// OutputDatasetStats renders per-series summary statistics as a table.
func OutputDatasetStats(w io.Writer, ds profiler.Dataset) error {
	table := tablewriter.NewWriter(w)
	table.Header("Series", "Samples", "Total", "Min", "Max", "Mean", "StdDev")

	for _, s := range SummarizeDataset(ds) {
		table.Append(
			s.Name,
			strconv.Itoa(s.Summary.Count),
			formatValue(s.Summary.Total),
			formatValue(s.Summary.Min),
			formatValue(s.Summary.Max),
			fmt.Sprintf("%.3f", s.Summary.Mean),
			fmt.Sprintf("%.3f", s.Summary.StdDev),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render statistics table: %w", err)
	}

	if _, recognised := profiler.UnitForLabel(ds.TimeUnits); recognised {
		_, err := fmt.Fprintf(w, "Time units: %s\n", ds.TimeUnits)
		return err
	}
	_, err := fmt.Fprintf(w, "Time units: %s (custom)\n", ds.TimeUnits)
	return err
}
