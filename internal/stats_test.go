package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timeprof/profiler"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected Summary
	}{
		{
			name:     "empty",
			data:     nil,
			expected: Summary{},
		},
		{
			name:     "single sample",
			data:     []float64{42},
			expected: Summary{Count: 1, Total: 42, Min: 42, Max: 42, Mean: 42, StdDev: 0},
		},
		{
			name:     "constant samples",
			data:     []float64{5, 5, 5, 5},
			expected: Summary{Count: 4, Total: 20, Min: 5, Max: 5, Mean: 5, StdDev: 0},
		},
		{
			name: "known spread",
			data: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			// sample stddev of this classic sequence is sqrt(32/7)
			expected: Summary{Count: 8, Total: 40, Min: 2, Max: 9, Mean: 5, StdDev: 2.1380899352993947},
		},
		{
			name:     "unordered",
			data:     []float64{9, 1, 5},
			expected: Summary{Count: 3, Total: 15, Min: 1, Max: 9, Mean: 5, StdDev: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.data)
			assert.Equal(t, tt.expected.Count, got.Count)
			assert.InDelta(t, tt.expected.Total, got.Total, 1e-9)
			assert.InDelta(t, tt.expected.Min, got.Min, 1e-9)
			assert.InDelta(t, tt.expected.Max, got.Max, 1e-9)
			assert.InDelta(t, tt.expected.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.expected.StdDev, got.StdDev, 1e-9)
		})
	}
}

func TestSummarizeDataset(t *testing.T) {
	ds := profiler.Dataset{
		Series: []profiler.Series{
			{Name: "read", Color: "#f00", Data: []float64{1, 3}},
			{Name: "write", Color: "#00f", Data: []float64{10}},
		},
		TimeUnits: "ms",
	}

	summaries := SummarizeDataset(ds)

	assert.Len(t, summaries, 2)
	assert.Equal(t, "read", summaries[0].Name)
	assert.Equal(t, "#f00", summaries[0].Color)
	assert.Equal(t, 2, summaries[0].Summary.Count)
	assert.InDelta(t, 2.0, summaries[0].Summary.Mean, 1e-9)
	assert.Equal(t, "write", summaries[1].Name)
	assert.Equal(t, 1, summaries[1].Summary.Count)
}
