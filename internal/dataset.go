package internal

import (
	"fmt"
	"io"
	"os"

	"timeprof/profiler"
)

// LoadDatasetFile reads and validates one dataset (.js) file.
func LoadDatasetFile(filename string) (profiler.Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return profiler.Dataset{}, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	ds, err := profiler.DecodeDataset(file)
	if err != nil {
		return profiler.Dataset{}, fmt.Errorf("failed to load dataset %s: %w", filename, err)
	}
	return ds, nil
}

// LoadDatasetFiles loads several dataset files in argument order.
func LoadDatasetFiles(filenames []string) ([]profiler.Dataset, error) {
	var datasets []profiler.Dataset
	for _, filename := range filenames {
		ds, err := LoadDatasetFile(filename)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// MergeDatasets combines the series of all datasets into one, for
// side-by-side plotting in the viewer. All inputs must carry the same
// time unit label and series names must not collide.
func MergeDatasets(datasets []profiler.Dataset) (profiler.Dataset, error) {
	if len(datasets) == 0 {
		return profiler.Dataset{}, fmt.Errorf("no datasets to merge")
	}

	res := profiler.Dataset{TimeUnits: datasets[0].TimeUnits}
	seen := make(map[string]struct{})

	for i, ds := range datasets {
		if ds.TimeUnits != res.TimeUnits {
			return profiler.Dataset{}, fmt.Errorf("time unit mismatch: dataset %d has %q, expected %q",
				i+1, ds.TimeUnits, res.TimeUnits)
		}
		for _, s := range ds.Series {
			if _, dup := seen[s.Name]; dup {
				return profiler.Dataset{}, fmt.Errorf("duplicate series name %q", s.Name)
			}
			seen[s.Name] = struct{}{}
			res.Series = append(res.Series, s)
		}
	}

	return res, nil
}

// WriteDatasetFile writes a dataset to filename, or to w when filename is
// "" or "-".
func WriteDatasetFile(w io.Writer, ds profiler.Dataset, filename string) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	if filename == "" || filename == "-" {
		return profiler.EncodeDataset(w, ds)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	err = profiler.EncodeDataset(file, ds)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
