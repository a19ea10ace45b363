package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeprof/internal"
)

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "parse.js", sampleDatasetMS)

	output, err := execute(t, newReportCmd(), "--source", "nightly", path)
	require.NoError(t, err)

	var report internal.Report
	require.NoError(t, json.Unmarshal([]byte(output), &report))

	assert.NotEmpty(t, report.Identifier)
	assert.Equal(t, "nightly", report.Source)
	assert.Equal(t, "ms", report.TimeUnits)
	require.Len(t, report.Series, 1)
	assert.Equal(t, "parse", report.Series[0].Name)
	assert.Equal(t, 3, report.Series[0].Summary.Count)
}

func TestReportCommand_ToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "parse.js", sampleDatasetMS)
	out := filepath.Join(dir, "report.json")

	_, err := execute(t, newReportCmd(), "--source", "nightly", "-o", out, path)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report internal.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "nightly", report.Source)
}

func TestReportCommand_SourceRequired(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "parse.js", sampleDatasetMS)

	_, err := execute(t, newReportCmd(), path)
	assert.Error(t, err)
}
