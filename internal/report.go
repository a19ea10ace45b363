package internal

import (
	"time"

	"github.com/google/uuid"

	"timeprof/profiler"
)

// Report is the JSON report generated from a dataset file.
type Report struct {
	Identifier string         `json:"id"`
	Generated  string         `json:"generated"`
	Source     string         `json:"source"`
	Generator  string         `json:"generator"`
	TimeUnits  string         `json:"timeUnits"`
	Series     []ReportSeries `json:"series"`
}

// ReportSeries is the per-series section of a report.
type ReportSeries struct {
	Name    string  `json:"name"`
	Color   string  `json:"color"`
	Summary Summary `json:"summary"`
	// TotalSeconds is the series total converted to seconds. Present only
	// when the dataset's unit label is one of the recognised units; custom
	// labels have no known conversion ratio.
	TotalSeconds *float64 `json:"totalSeconds,omitempty"`
}

// GenerateReport creates a report from a dataset. source names the
// workload that produced the samples.
func GenerateReport(ds profiler.Dataset, source string) Report {
	report := Report{
		Identifier: uuid.New().String(),
		Generated:  time.Now().UTC().Format(time.RFC3339),
		Source:     source,
		Generator:  "timeprof " + Version,
		TimeUnits:  ds.TimeUnits,
	}

	unit, recognised := profiler.UnitForLabel(ds.TimeUnits)

	for _, summary := range SummarizeDataset(ds) {
		rs := ReportSeries{
			Name:    summary.Name,
			Color:   summary.Color,
			Summary: summary.Summary,
		}
		if recognised {
			seconds := summary.Summary.Total * unit.Seconds()
			rs.TotalSeconds = &seconds
		}
		report.Series = append(report.Series, rs)
	}

	return report
}
