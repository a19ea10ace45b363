package internal

import (
	"math"

	"timeprof/profiler"
)

// Summary holds derived statistics for one series of samples. Values are
// in the dataset's time unit.
type Summary struct {
	Count  int     `json:"samples"`
	Total  float64 `json:"total"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Summarize computes summary statistics over a sample sequence. The zero
// Summary is returned for an empty sequence.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(data),
		Min:   data[0],
		Max:   data[0],
	}
	for _, v := range data {
		s.Total += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = s.Total / float64(s.Count)

	// Sample standard deviation; a single sample has no spread.
	if s.Count > 1 {
		var sq float64
		for _, v := range data {
			d := v - s.Mean
			sq += d * d
		}
		s.StdDev = math.Sqrt(sq / float64(s.Count-1))
	}

	return s
}

// SeriesSummary pairs a series with its summary for output and reports.
type SeriesSummary struct {
	Name    string  `json:"name"`
	Color   string  `json:"color"`
	Summary Summary `json:"summary"`
}

// SummarizeDataset computes summaries for every series, in dataset order.
func SummarizeDataset(ds profiler.Dataset) []SeriesSummary {
	summaries := make([]SeriesSummary, 0, len(ds.Series))
	for _, s := range ds.Series {
		summaries = append(summaries, SeriesSummary{
			Name:    s.Name,
			Color:   s.Color,
			Summary: Summarize(s.Data),
		})
	}
	return summaries
}
