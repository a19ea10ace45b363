package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"timeprof/profiler"
)

// ArchiveEntry is one dataset stored in a CBOR archive. Archives are
// append-only sequences of entries, so many profiling runs can share one
// compact file and be exported to a viewer dataset later.
type ArchiveEntry struct {
	Version   uint16          `cbor:"version"`
	Generator string          `cbor:"generator"`
	Created   string          `cbor:"created"` // RFC 3339, UTC
	TimeUnits string          `cbor:"time_units"`
	Series    []archiveSeries `cbor:"series"`
}

type archiveSeries struct {
	Name  string    `cbor:"name"`
	Color string    `cbor:"color"`
	Data  []float64 `cbor:"data"`
}

func newArchiveEntry(ds profiler.Dataset, created time.Time) ArchiveEntry {
	entry := ArchiveEntry{
		Version:   ArchiveVersion,
		Generator: fmt.Sprintf("timeprof %s", Version),
		Created:   created.UTC().Format(time.RFC3339),
		TimeUnits: ds.TimeUnits,
	}
	for _, s := range ds.Series {
		entry.Series = append(entry.Series, archiveSeries{Name: s.Name, Color: s.Color, Data: s.Data})
	}
	return entry
}

// Dataset converts an archive entry back into a viewer dataset.
func (entry ArchiveEntry) Dataset() profiler.Dataset {
	ds := profiler.Dataset{TimeUnits: entry.TimeUnits}
	for _, s := range entry.Series {
		ds.Series = append(ds.Series, profiler.Series{Name: s.Name, Color: s.Color, Data: s.Data})
	}
	return ds
}

// AppendArchive appends one record per dataset to the archive file,
// creating it if needed.
func AppendArchive(filename string, datasets []profiler.Dataset) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G302 G304
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	enc := cbor.NewEncoder(file)
	for _, ds := range datasets {
		if err := enc.Encode(newArchiveEntry(ds, time.Now())); err != nil {
			return fmt.Errorf("failed to append to archive %s: %w", filename, err)
		}
	}
	return nil
}

// LoadArchive reads every entry of a CBOR archive, in append order.
func LoadArchive(filename string) ([]ArchiveEntry, error) {
	buffer, err := os.ReadFile(filename) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", filename, err)
	}

	var entries []ArchiveEntry
	for len(buffer) > 0 {
		var entry ArchiveEntry

		remaining, err := cbor.UnmarshalFirst(buffer, &entry)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal CBOR record %d in %s: %w", len(entries)+1, filename, err)
		}
		if entry.Version != ArchiveVersion {
			return nil, fmt.Errorf("unsupported archive version %d in record %d of %s", entry.Version, len(entries)+1, filename)
		}

		entries = append(entries, entry)
		buffer = remaining
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("archive %s contains no records", filename)
	}

	return entries, nil
}
