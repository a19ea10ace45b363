package profiler

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Series is one line-chart series: a named, coloured sequence of samples.
type Series struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Data  []float64 `json:"data"`
}

// Dataset is the content of one dataset file as the companion viewer loads
// it: one or more series sharing a time unit label.
type Dataset struct {
	Series    []Series `json:"dataSet"`
	TimeUnits string   `json:"timeUnits"`
}

// Validate checks the contract towards the companion viewer: at least one
// series and a non-empty unit label (custom labels are allowed).
func (ds Dataset) Validate() error {
	if len(ds.Series) == 0 {
		return fmt.Errorf("dataset has no series")
	}
	if ds.TimeUnits == "" {
		return fmt.Errorf("dataset has no time unit label")
	}
	for _, s := range ds.Series {
		if s.Name == "" {
			return fmt.Errorf("dataset contains a series without a name")
		}
	}
	return nil
}

// EncodeDataset writes the dataset in the exact textual layout the viewer
// expects:
//
//	{"dataSet" : [
//	{"name": "<name>", "color": "<color>", "data":[v1, v2, ..., vn]}
//	], "timeUnits": "<unit-label>"}
//
// Values use shortest round-trip formatting, so decoding reproduces the
// recorded samples exactly.
func EncodeDataset(w io.Writer, ds Dataset) error {
	var sb strings.Builder
	sb.WriteString("{\"dataSet\" : [\n")
	for i, s := range ds.Series {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, "{\"name\": %q, \"color\": %q, \"data\":[", s.Name, s.Color)
		for j, v := range s.Data {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]}")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "], \"timeUnits\": %q}\n", ds.TimeUnits)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// DecodeDataset parses a dataset file. The layout written by EncodeDataset
// is valid JSON, so any file the viewer can load decodes here too.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// DatasetFileName builds the output path for a dataset:
// <outputDir>/line_dataset_<name><NN>_<YYMMDDHHMMSS>.js with NN drawn
// uniformly from [10,99] and the timestamp in UTC at second resolution.
func DatasetFileName(outputDir, name string, now time.Time) string {
	base := fmt.Sprintf("line_dataset_%s%d_%s.js",
		name, 10+rand.IntN(90), now.UTC().Format("060102150405"))
	if outputDir == "" {
		return base
	}
	return filepath.Join(outputDir, base)
}
