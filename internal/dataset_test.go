package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeprof/profiler"
)

func writeTempDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDatasetFile(t *testing.T) {
	path := writeTempDataset(t, `{"dataSet" : [
{"name": "parse", "color": "#00ff00", "data":[120, 118.5, 131]}
], "timeUnits": "μs"}
`)

	ds, err := LoadDatasetFile(path)
	require.NoError(t, err)

	assert.Equal(t, "μs", ds.TimeUnits)
	require.Len(t, ds.Series, 1)
	assert.Equal(t, []float64{120, 118.5, 131}, ds.Series[0].Data)
}

func TestLoadDatasetFile_Missing(t *testing.T) {
	_, err := LoadDatasetFile(filepath.Join(t.TempDir(), "nope.js"))
	assert.Error(t, err)
}

func TestMergeDatasets(t *testing.T) {
	a := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Color: "#f00", Data: []float64{1, 2}}},
		TimeUnits: "ms",
	}
	b := profiler.Dataset{
		Series: []profiler.Series{
			{Name: "write", Color: "#0f0", Data: []float64{3}},
			{Name: "fsync", Color: "#00f", Data: []float64{4}},
		},
		TimeUnits: "ms",
	}

	merged, err := MergeDatasets([]profiler.Dataset{a, b})
	require.NoError(t, err)

	assert.Equal(t, "ms", merged.TimeUnits)
	require.Len(t, merged.Series, 3)
	// argument order is preserved
	assert.Equal(t, "read", merged.Series[0].Name)
	assert.Equal(t, "write", merged.Series[1].Name)
	assert.Equal(t, "fsync", merged.Series[2].Name)
}

func TestMergeDatasets_UnitMismatch(t *testing.T) {
	a := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Data: []float64{1}}},
		TimeUnits: "ms",
	}
	b := profiler.Dataset{
		Series:    []profiler.Series{{Name: "write", Data: []float64{2}}},
		TimeUnits: "secs",
	}

	_, err := MergeDatasets([]profiler.Dataset{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time unit mismatch")
}

func TestMergeDatasets_DuplicateSeries(t *testing.T) {
	a := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Data: []float64{1}}},
		TimeUnits: "ms",
	}
	b := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Data: []float64{2}}},
		TimeUnits: "ms",
	}

	_, err := MergeDatasets([]profiler.Dataset{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate series name "read"`)
}

func TestMergeDatasets_Empty(t *testing.T) {
	_, err := MergeDatasets(nil)
	assert.Error(t, err)
}

func TestWriteDatasetFile_ToWriter(t *testing.T) {
	ds := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Color: "#f00", Data: []float64{1.5}}},
		TimeUnits: "ms",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDatasetFile(&buf, ds, ""))

	got, err := profiler.DecodeDataset(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestWriteDatasetFile_ToFile(t *testing.T) {
	ds := profiler.Dataset{
		Series:    []profiler.Series{{Name: "read", Color: "#f00", Data: []float64{1, 2}}},
		TimeUnits: "ms",
	}

	path := filepath.Join(t.TempDir(), "out.js")
	require.NoError(t, WriteDatasetFile(&bytes.Buffer{}, ds, path))

	got, err := LoadDatasetFile(path)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestWriteDatasetFile_Invalid(t *testing.T) {
	err := WriteDatasetFile(&bytes.Buffer{}, profiler.Dataset{TimeUnits: "ms"}, "")
	assert.Error(t, err)
}
