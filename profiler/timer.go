// Package profiler records elapsed-time samples and serialises them to a
// dataset file the companion line-chart viewer can load.
//
// A SampleTimer is driven entirely by its caller:
//
//	st, _ := profiler.New("parse", "#00ff00", profiler.Microseconds,
//		profiler.WithOutputDir("."))
//	defer st.Close()
//
//	for _, f := range files {
//		st.Start()
//		parse(f)
//		st.TakeSample(false) // one sample per file
//	}
//
// or, averaging repeated segments:
//
//	for range work {
//		st.Start()
//		step()
//		st.Pause()
//		otherWork()
//	}
//	st.TakeAverageSample(true)
//
// A SampleTimer is not safe for concurrent use; share one per goroutine or
// guard it externally.
package profiler

import (
	"fmt"
	"io"
	"os"
	"time"
)

// SampleTimer measures elapsed wall-clock durations across one or more
// segments, accumulates them into discrete samples and, on Close, writes
// the sample sequence to its dataset file.
type SampleTimer struct {
	name  string
	color string
	unit  TimeUnit

	buffer  []float64
	total   int64 // sum of finalised samples, in units
	partial int64 // sum of paused segments since the last sample, in units
	count   int64 // paused segments folded into partial
	running bool
	startAt time.Time

	sink     *os.File
	sinkPath string
	closed   bool

	outputDir string
	disabled  bool
	diag      io.Writer
	now       func() time.Time
}

// Option configures a SampleTimer at construction.
type Option func(*SampleTimer)

// WithOutputDir sets the directory the dataset file is created in. Without
// it the timer measures in memory only and Close writes nothing.
func WithOutputDir(dir string) Option {
	return func(st *SampleTimer) { st.outputDir = dir }
}

// WithDiagnostics redirects advisory messages (default stderr).
func WithDiagnostics(w io.Writer) Option {
	return func(st *SampleTimer) { st.diag = w }
}

// Disabled turns every operation into a no-op while keeping the same API,
// so instrumentation can stay in place in production builds.
func Disabled() Option {
	return func(st *SampleTimer) { st.disabled = true }
}

// New creates a timer for one dataset. name identifies the series and
// color is passed through to the serialised output for the viewer. The
// unit must validate; that is the only construction error. If an output
// directory is configured but the file cannot be created, the timer
// degrades to in-memory operation with an advisory.
func New(name, color string, unit TimeUnit, opts ...Option) (*SampleTimer, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}

	st := &SampleTimer{
		name:   name,
		color:  color,
		unit:   unit,
		buffer: make([]float64, 0, 64),
		diag:   os.Stderr,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(st)
	}

	if st.disabled || st.outputDir == "" {
		return st, nil
	}

	path := DatasetFileName(st.outputDir, name, st.now())
	sink, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(st.diag, "cannot create %s, keeping samples in memory only: %v\n", path, err)
		return st, nil
	}
	st.sink = sink
	st.sinkPath = path

	return st, nil
}

// Start records the current timestamp as the active reference point. A
// second Start without an intervening Pause or sample silently wins.
func (st *SampleTimer) Start() {
	if st.disabled {
		return
	}
	st.running = true
	st.startAt = st.now()
}

// Pause folds the time elapsed since Start into the pending partial sum
// and stops the clock. Without a prior Start it only emits an advisory.
func (st *SampleTimer) Pause() {
	if st.disabled {
		return
	}
	if !st.running {
		fmt.Fprintln(st.diag, "Timer did not start.")
		return
	}
	st.partial += st.elapsed()
	st.count++
	st.running = false
}

// TakeSample finalises the current measurement into one sample. With no
// paused segments pending, the sample is the time elapsed since the most
// recent Start (anything before that Start is discarded); otherwise it is
// the accumulated partial sum. If print is set the value is emitted to the
// diagnostic writer.
func (st *SampleTimer) TakeSample(print bool) {
	if st.disabled {
		return
	}
	if !st.running && st.count == 0 {
		fmt.Fprintln(st.diag, "Timer did not start.")
		return
	}

	if st.count == 0 {
		st.partial = st.elapsed()
	}
	if print {
		fmt.Fprintf(st.diag, "Elapsed time: %d %s\n", st.partial, st.unit.Label)
	}

	st.buffer = append(st.buffer, float64(st.partial))
	st.total += st.partial
	st.partial = 0
	st.count = 0
	st.running = false
}

// TakeAverageSample finalises the average of the segments accumulated via
// Pause since the last sample. It requires at least one paused segment;
// otherwise it emits an advisory and changes nothing. The un-averaged sum
// still counts towards the running total.
func (st *SampleTimer) TakeAverageSample(print bool) {
	if st.disabled {
		return
	}
	if st.count == 0 {
		fmt.Fprintln(st.diag, "use pause() to capture elapsed times")
		return
	}

	average := float64(st.partial) / float64(st.count)
	if print {
		fmt.Fprintf(st.diag, "Average elapsed time: %.3f %s\n", average, st.unit.Label)
	}

	st.buffer = append(st.buffer, average)
	st.total += st.partial
	st.partial = 0
	st.count = 0
	st.running = false
}

// TotalTime emits the running total to the diagnostic writer. Read-only.
func (st *SampleTimer) TotalTime() {
	if st.disabled {
		return
	}
	fmt.Fprintf(st.diag, "%d %s\n", st.total, st.unit.Label)
}

// Total returns the sum of all finalised samples since construction or the
// last Reset, in units.
func (st *SampleTimer) Total() int64 {
	return st.total
}

// Samples returns a copy of the sample buffer in capture order.
func (st *SampleTimer) Samples() []float64 {
	out := make([]float64, len(st.buffer))
	copy(out, st.buffer)
	return out
}

// Path returns the dataset file path, or "" when no sink is configured.
func (st *SampleTimer) Path() string {
	return st.sinkPath
}

// Unit returns the unit samples are recorded in.
func (st *SampleTimer) Unit() TimeUnit {
	return st.unit
}

// Reset clears the clock, the accumulators and the sample buffer. An open
// sink stays open; a later Close still writes whatever is in the buffer
// at that point.
func (st *SampleTimer) Reset() {
	if st.disabled {
		return
	}
	st.running = false
	st.total = 0
	st.partial = 0
	st.count = 0
	st.buffer = st.buffer[:0]
}

// Close flushes the buffered samples to the dataset file and releases it.
// It must be called on every exit path of the owning scope, usually via
// defer. Only the first call writes; later calls return nil. Without a
// configured sink Close only resets state.
func (st *SampleTimer) Close() error {
	if st.disabled || st.closed {
		return nil
	}
	st.closed = true

	if st.sink == nil {
		st.Reset()
		return nil
	}

	ds := Dataset{
		Series:    []Series{{Name: st.name, Color: st.color, Data: st.buffer}},
		TimeUnits: st.unit.Label,
	}
	err := EncodeDataset(st.sink, ds)
	if err == nil {
		err = st.sink.Sync()
	}
	if closeErr := st.sink.Close(); err == nil {
		err = closeErr
	}
	st.sink = nil
	st.Reset()

	if err != nil {
		return fmt.Errorf("failed to flush dataset to %s: %w", st.sinkPath, err)
	}
	return nil
}

// elapsed returns the time since the reference point truncated to whole
// units. Valid only while running.
func (st *SampleTimer) elapsed() int64 {
	return int64(st.now().Sub(st.startAt) / st.unit.Granularity)
}
