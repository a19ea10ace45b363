package profiler

import (
	"fmt"
	"time"
)

// TimeUnit selects the granularity samples are recorded in and the label
// written to the dataset file. The zero value is invalid; use one of the
// predefined units or Custom.
type TimeUnit struct {
	// Label is written to the "timeUnits" field of the dataset file. The
	// companion viewer recognises the labels of the predefined units, but
	// accepts any custom label for the axis.
	Label string
	// Granularity is the duration of one unit. Elapsed time is truncated
	// into whole multiples of it.
	Granularity time.Duration
}

var (
	Nanoseconds  = TimeUnit{Label: "ns", Granularity: time.Nanosecond}
	Microseconds = TimeUnit{Label: "μs", Granularity: time.Microsecond}
	Milliseconds = TimeUnit{Label: "ms", Granularity: time.Millisecond}
	Seconds      = TimeUnit{Label: "secs", Granularity: time.Second}
	Minutes      = TimeUnit{Label: "mins", Granularity: time.Minute}
	Hours        = TimeUnit{Label: "hrs", Granularity: time.Hour}
	Days         = TimeUnit{Label: "days", Granularity: 24 * time.Hour}
)

// builtinUnits lists the units with labels the companion viewer recognises.
var builtinUnits = []TimeUnit{
	Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours, Days,
}

// Custom returns a caller-defined unit, e.g. Custom("ticks", 10*time.Millisecond).
func Custom(label string, granularity time.Duration) TimeUnit {
	return TimeUnit{Label: label, Granularity: granularity}
}

// Validate reports whether the unit can be used to record samples.
func (u TimeUnit) Validate() error {
	if u.Label == "" {
		return fmt.Errorf("time unit has no label")
	}
	if u.Granularity <= 0 {
		return fmt.Errorf("time unit %q has non-positive granularity %v", u.Label, u.Granularity)
	}
	return nil
}

// Seconds returns the conversion ratio from one unit to seconds.
func (u TimeUnit) Seconds() float64 {
	return u.Granularity.Seconds()
}

// UnitForLabel maps a recognised unit label (as found in the "timeUnits"
// field of a dataset file) back to its unit. Custom labels are not found.
func UnitForLabel(label string) (TimeUnit, bool) {
	for _, u := range builtinUnits {
		if u.Label == label {
			return u, true
		}
	}
	return TimeUnit{}, false
}
